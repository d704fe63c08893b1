// Package console is the fallback presentation sink used when stdout is
// not a terminal: it streams displayable records as plain lines.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/flashtools/flashlog/internal/record"
)

// ClearMarker is printed when the log is cleared, so a piped consumer can
// see the boundary.
const ClearMarker = "--- CLEAR ---"

// Sink writes records to w in arrival order.
type Sink struct {
	w io.Writer
}

// New returns a sink writing to w.
func New(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Run drains records until the context is cancelled or the channel is
// closed. Write errors end the run; there is nowhere left to display to.
func (s *Sink) Run(ctx context.Context, records <-chan record.Record) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case rec, ok := <-records:
			if !ok {
				return nil
			}
			if err := s.Write(rec); err != nil {
				return err
			}
		}
	}
}

// Write renders one record as a single line.
func (s *Sink) Write(rec record.Record) error {
	if _, err := fmt.Fprintln(s.w, rec.Raw); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// Clear prints the clear marker.
func (s *Sink) Clear() error {
	if _, err := fmt.Fprintf(s.w, "\n%s\n\n", ClearMarker); err != nil {
		return fmt.Errorf("write clear marker: %w", err)
	}
	return nil
}
