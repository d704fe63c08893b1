// Package buffer provides the bounded in-memory store of every received
// record, in arrival order. It is the source of truth the sink replays
// when the filter settings change.
package buffer

import (
	"sync"

	"github.com/flashtools/flashlog/internal/record"
)

// DefaultLimit caps the buffer at the most recent hundred thousand records.
const DefaultLimit = 100_000

const initialCapacity = 1024

// Buffer is a bounded FIFO of records backed by a ring, so eviction of the
// oldest record is O(1) no matter how full it is. Safe for one writer and
// concurrent readers.
type Buffer struct {
	mu    sync.Mutex
	ring  []record.Record
	head  int
	count int
	limit int
}

// New returns an empty buffer holding at most limit records. A
// non-positive limit uses DefaultLimit.
func New(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Buffer{limit: limit}
}

// Append adds a record at the tail, evicting the oldest record once the
// limit is reached.
func (b *Buffer) Append(r record.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == len(b.ring) && b.count < b.limit {
		b.grow()
	}
	if b.count == b.limit {
		// Full: overwrite the oldest slot.
		b.ring[b.head] = r
		b.head = (b.head + 1) % len(b.ring)
		return
	}
	b.ring[(b.head+b.count)%len(b.ring)] = r
	b.count++
}

// grow doubles the ring (capped at the limit), unrolling it so the oldest
// record lands at index zero.
func (b *Buffer) grow() {
	size := len(b.ring) * 2
	if size == 0 {
		size = initialCapacity
	}
	if size > b.limit {
		size = b.limit
	}
	next := make([]record.Record, size)
	for i := 0; i < b.count; i++ {
		next[i] = b.ring[(b.head+i)%len(b.ring)]
	}
	b.ring = next
	b.head = 0
}

// Clear empties the buffer. The filter settings are untouched; they live
// elsewhere.
func (b *Buffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ring = nil
	b.head = 0
	b.count = 0
}

// Len returns the number of buffered records.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Snapshot returns a copy of the buffered records in arrival order.
// Appends that land after the snapshot is taken do not affect it, so a
// replay can proceed while ingestion continues.
func (b *Buffer) Snapshot() []record.Record {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]record.Record, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.ring[(b.head+i)%len(b.ring)]
	}
	return out
}
