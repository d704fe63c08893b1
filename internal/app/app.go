package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/flashtools/flashlog/internal/buffer"
	"github.com/flashtools/flashlog/internal/config"
	"github.com/flashtools/flashlog/internal/console"
	"github.com/flashtools/flashlog/internal/filter"
	"github.com/flashtools/flashlog/internal/pipeline"
	"github.com/flashtools/flashlog/internal/server"
	"github.com/flashtools/flashlog/internal/state"
	"github.com/flashtools/flashlog/internal/ui"
)

// Options configure the application. Zero values defer to the config
// file and its defaults.
type Options struct {
	ConfigPath         string
	Listen             string   // overrides the config listen address
	Port               int      // overrides just the port on 127.0.0.1
	Exclude            []string // additional sender exclusions
	NoDownloadExcludes bool     // drop the default download exclusions
	Console            bool     // force the console sink even on a terminal
}

// Run boots the viewer until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	listen := cfg.Listen
	if opts.Port > 0 {
		listen = fmt.Sprintf("127.0.0.1:%d", opts.Port)
	}
	if opts.Listen != "" {
		listen = opts.Listen
	}

	excludeDownloads := cfg.ExcludeDownloads && !opts.NoDownloadExcludes
	excluded := make([]string, 0, len(filter.DefaultExcludedSenders))
	if excludeDownloads {
		excluded = append(excluded, filter.DefaultExcludedSenders...)
	}
	excluded = append(excluded, cfg.Exclude...)
	excluded = append(excluded, opts.Exclude...)

	pipe := pipeline.New(filter.New(excluded), buffer.New(cfg.BufferLimit), 0)
	store := &state.Store{}

	srv := server.New(listen, pipe, store)
	if err := srv.Start(ctx); err != nil {
		return err
	}

	if opts.Console || !term.IsTerminal(int(os.Stdout.Fd())) {
		if !opts.Console {
			log.Printf("stdout is not a terminal, using console output")
		}
		return console.New(os.Stdout).Run(ctx, pipe.Records())
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Pipeline:  pipe,
		Store:     store,
		ThemeName: cfg.Theme,
	})
}
