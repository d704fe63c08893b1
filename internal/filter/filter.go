// Package filter decides which records are shown. The match functions are
// pure; Config adds the mutable settings shared between the ingestion
// server and the presentation sink.
package filter

import (
	"strings"
	"sync"

	"github.com/flashtools/flashlog/internal/record"
)

// DefaultExcludedSenders suppresses the chatty download subsystems unless
// disabled at startup.
var DefaultExcludedSenders = []string{"download", "downloadovor", "downloadmanager"}

// ShouldExclude reports whether any exclusion substring occurs in the
// record's sender or in its lowercased text. A record with no recognizable
// sender is never excluded, so a broad exclusion list cannot hide lines
// the heuristic failed on.
func ShouldExclude(r record.Record, excluded []string) bool {
	if len(excluded) == 0 || r.Sender == "" {
		return false
	}
	raw := strings.ToLower(r.Raw)
	for _, e := range excluded {
		if strings.Contains(r.Sender, e) || strings.Contains(raw, e) {
			return true
		}
	}
	return false
}

// MatchesKeyword reports whether the record's text contains the keyword,
// case-insensitively. An empty keyword matches everything.
func MatchesKeyword(r record.Record, keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Raw), strings.ToLower(keyword))
}

// Displayable is the composite decision: exclusion takes precedence over
// the keyword match.
func Displayable(r record.Record, keyword string, excluded []string) bool {
	return !ShouldExclude(r, excluded) && MatchesKeyword(r, keyword)
}

// Config holds the current keyword and exclusion list. The presentation
// sink is the single writer; the ingestion path only reads.
type Config struct {
	mu       sync.RWMutex
	keyword  string
	excluded []string
}

// New returns a Config with the given exclusion substrings. Entries are
// trimmed and lowercased; empty entries are dropped.
func New(excluded []string) *Config {
	return &Config{excluded: Normalize(excluded)}
}

// SetKeyword replaces the include keyword. Surrounding whitespace is
// trimmed; an empty keyword disables the check.
func (c *Config) SetKeyword(keyword string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyword = strings.TrimSpace(keyword)
}

// Keyword returns the current include keyword.
func (c *Config) Keyword() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keyword
}

// SetExcludedSenders replaces the exclusion list.
func (c *Config) SetExcludedSenders(excluded []string) {
	normalized := Normalize(excluded)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.excluded = normalized
}

// ExcludedSenders returns a copy of the current exclusion list.
func (c *Config) ExcludedSenders() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.excluded) == 0 {
		return nil
	}
	dup := make([]string, len(c.excluded))
	copy(dup, c.excluded)
	return dup
}

// Displayable evaluates the record against the current settings.
func (c *Config) Displayable(r record.Record) bool {
	c.mu.RLock()
	keyword, excluded := c.keyword, c.excluded
	c.mu.RUnlock()
	return Displayable(r, keyword, excluded)
}

// Normalize trims and lowercases exclusion entries, dropping empties.
// Invalid user input is treated permissively, never rejected.
func Normalize(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ParseList splits a comma-separated exclusion list as typed by the user
// into normalized entries.
func ParseList(raw string) []string {
	return Normalize(strings.Split(raw, ","))
}
