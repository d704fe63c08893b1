// Package pipeline glues the parser, filter, and buffer together and
// exposes the command surface the presentation sink drives.
package pipeline

import (
	"log"
	"sync/atomic"

	"github.com/flashtools/flashlog/internal/buffer"
	"github.com/flashtools/flashlog/internal/filter"
	"github.com/flashtools/flashlog/internal/record"
)

const defaultQueueDepth = 4096

// Pipeline owns the record flow from reassembled line to sink. The
// ingestion server calls Ingest from its read loop; the sink drains
// Records and issues filter commands.
type Pipeline struct {
	cfg     *filter.Config
	buf     *buffer.Buffer
	out     chan record.Record
	dropped atomic.Int64
}

// New wires a pipeline over the given filter settings and buffer.
// queueDepth sizes the sink hand-off channel; non-positive uses a default.
func New(cfg *filter.Config, buf *buffer.Buffer, queueDepth int) *Pipeline {
	if queueDepth <= 0 {
		queueDepth = defaultQueueDepth
	}
	return &Pipeline{
		cfg: cfg,
		buf: buf,
		out: make(chan record.Record, queueDepth),
	}
}

// Ingest parses one line, stores the record unconditionally, and forwards
// it to the sink when it passes the current filter. If the sink queue is
// full the record is dropped from display only; a refilter rebuilds the
// view from the buffer.
func (p *Pipeline) Ingest(line string) record.Record {
	rec := record.Parse(line)
	p.buf.Append(rec)
	if p.cfg.Displayable(rec) {
		select {
		case p.out <- rec:
		default:
			n := p.dropped.Add(1)
			log.Printf("pipeline: sink queue full, record not displayed (total %d)", n)
		}
	}
	return rec
}

// Records is the ordered stream of displayable records for the sink.
func (p *Pipeline) Records() <-chan record.Record {
	return p.out
}

// Dropped returns how many displayable records were not forwarded because
// the sink queue was full.
func (p *Pipeline) Dropped() int64 {
	return p.dropped.Load()
}

// SetKeyword updates the include keyword for subsequent decisions.
func (p *Pipeline) SetKeyword(keyword string) {
	p.cfg.SetKeyword(keyword)
}

// Keyword returns the current include keyword.
func (p *Pipeline) Keyword() string {
	return p.cfg.Keyword()
}

// SetExcludedSenders replaces the sender exclusion list.
func (p *Pipeline) SetExcludedSenders(excluded []string) {
	p.cfg.SetExcludedSenders(excluded)
}

// ExcludedSenders returns the current sender exclusion list.
func (p *Pipeline) ExcludedSenders() []string {
	return p.cfg.ExcludedSenders()
}

// ClearBuffer discards the buffered history. Filter settings keep their
// values.
func (p *Pipeline) ClearBuffer() {
	p.buf.Clear()
}

// BufferLen reports how many records are currently buffered.
func (p *Pipeline) BufferLen() int {
	return p.buf.Len()
}

// Snapshot returns the full buffered history in arrival order.
func (p *Pipeline) Snapshot() []record.Record {
	return p.buf.Snapshot()
}

// Refilter replays the buffered history through the current filter and
// returns the records that should be shown, in arrival order. The replay
// works on a snapshot, so ingestion is never stalled behind it.
func (p *Pipeline) Refilter() []record.Record {
	snap := p.buf.Snapshot()
	out := make([]record.Record, 0, len(snap))
	for _, rec := range snap {
		if p.cfg.Displayable(rec) {
			out = append(out, rec)
		}
	}
	return out
}
