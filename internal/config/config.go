package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/flashtools/flashlog/internal/buffer"
)

// Config captures the startup settings of the viewer. Command-line flags
// override whatever the file provides.
type Config struct {
	// Listen is the TCP address the ingestion server binds.
	Listen string
	// ExcludeDownloads pre-populates the download-related sender
	// exclusions when true.
	ExcludeDownloads bool
	// Exclude lists additional sender substrings to hide.
	Exclude []string
	// Theme names the TUI color theme.
	Theme string
	// BufferLimit caps the in-memory record history.
	BufferLimit int
}

const (
	defaultConfigPath = "~/.config/flashlog/config.toml"

	// DefaultListen is where the bridge expects to find the viewer.
	DefaultListen = "127.0.0.1:8765"
)

// Load locates and parses the config file, falling back to defaults when
// it is missing. An unreadable or malformed file is an error: silently
// ignoring a file the user wrote would surprise them more than failing
// startup does.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Listen:           DefaultListen,
		ExcludeDownloads: true,
		BufferLimit:      buffer.DefaultLimit,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Listen           string   `toml:"listen"`
		ExcludeDownloads *bool    `toml:"exclude_downloads"`
		Exclude          []string `toml:"exclude"`
		Theme            string   `toml:"theme"`
		BufferLimit      int      `toml:"buffer_limit"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if listen := strings.TrimSpace(raw.Listen); listen != "" {
		cfg.Listen = listen
	}
	if raw.ExcludeDownloads != nil {
		cfg.ExcludeDownloads = *raw.ExcludeDownloads
	}
	cfg.Exclude = raw.Exclude
	cfg.Theme = strings.TrimSpace(raw.Theme)
	if raw.BufferLimit > 0 {
		cfg.BufferLimit = raw.BufferLimit
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
