// Package state provides the thread-safe status store shared between the
// ingestion server and the presentation sink.
//
// # Overview
//
// The server owns the network side of the application and runs on its own
// goroutine. The sink renders on another. This package is the coordination
// point between them: the server records phase transitions (stopped,
// listening, connected), the bound address, and connection-level errors;
// the sink reads immutable snapshots on its own schedule and never blocks
// the server.
//
// # Concurrency Model
//
// A single sync.RWMutex guards the snapshot. The server takes the write
// lock for each transition; the sink takes the read lock per render tick.
// Snapshot returns a value copy with the error defensively re-wrapped, so
// nothing the sink holds aliases the store's internals.
//
// The record stream itself does not pass through this store; it flows over
// the pipeline's hand-off channel. Only low-frequency status lives here.
package state
