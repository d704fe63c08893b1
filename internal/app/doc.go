// Package app provides the orchestration layer for the viewer.
//
// # Overview
//
// This package wires configuration, the ingestion pipeline, the TCP
// server, and a presentation sink into the running application. It is the
// composition root; the domain packages never import each other's wiring.
//
// # Startup Sequence
//
//  1. Load the TOML config (missing file means defaults)
//  2. Apply command-line overrides (listen address, exclusions)
//  3. Build the filter settings, record buffer, and pipeline
//  4. Bind the listen socket and launch the accept loop (a bind failure
//     is the one fatal startup error)
//  5. Pick a sink: the bubbletea TUI on a terminal, plain console
//     output otherwise (or when forced with --console)
//  6. Block in the sink until the user quits or the context cancels
//
// # Data Flow
//
//	socket bytes → server (line reassembly)
//	             → pipeline (parse → filter → buffer)
//	             → hand-off channel → sink (TUI or console)
//
// Commands flow the other way: the sink calls SetKeyword,
// SetExcludedSenders, ClearBuffer, and Refilter on the pipeline. The
// server and sink share nothing except the pipeline and the status
// store, each with a single writer.
//
// # Error Handling
//
// Fatal errors (returned from Run): unreadable or malformed config file,
// bind/listen failure. Everything on an active connection is recoverable:
// a disconnect drops the server back to listening and is merely logged.
package app
