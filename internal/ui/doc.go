// Package ui provides the interactive terminal sink, built on bubbletea.
//
// The model consumes the pipeline's hand-off channel one record at a time
// (each delivery re-arms a listening command, so wire order is preserved)
// and renders into a viewport backed by a character-bounded display
// buffer. Filter edits, clear, and refilter are issued from here back
// into the pipeline; a refilter replays the record history and rebuilds
// the display from scratch.
//
// The server's status store is polled once a second for the header; the
// network side is never blocked by rendering.
package ui
