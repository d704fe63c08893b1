// Package config handles loading the viewer's configuration file.
//
// # Overview
//
// Settings live in a small TOML file; everything it covers can also be set
// (and overridden) on the command line. The file is optional: a missing
// file means defaults, which are enough to talk to a bridge on the
// standard local port.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/flashlog/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// A file that exists but cannot be read or parsed fails startup; a config
// the user wrote should never be silently ignored.
//
// # Fields
//
//   - listen: TCP address the ingestion server binds (default 127.0.0.1:8765)
//   - exclude_downloads: pre-populate download sender exclusions (default true)
//   - exclude: additional sender substrings to hide
//   - theme: TUI color theme name
//   - buffer_limit: record history cap (default 100000)
package config
