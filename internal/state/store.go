package state

import (
	"fmt"
	"sync"
	"time"
)

// Phase is the ingestion server's connection phase.
type Phase int

const (
	PhaseStopped Phase = iota
	PhaseListening
	PhaseConnected
)

// String returns the phase name for display.
func (p Phase) String() string {
	switch p {
	case PhaseListening:
		return "LISTENING"
	case PhaseConnected:
		return "CONNECTED"
	default:
		return "STOPPED"
	}
}

// Snapshot is the latest server status available to the sink.
type Snapshot struct {
	Phase       Phase
	Addr        string // bound listen address
	Connects    int64  // client connections since startup, current one included
	LastError   error  // most recent connection-level error, if any
	LastUpdated time.Time
}

// Store coordinates concurrent updates to the snapshot. The server writes;
// the sink reads.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetPhase records a server phase transition.
func (s *Store) SetPhase(phase Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Phase = phase
	if phase == PhaseConnected {
		s.snapshot.Connects++
	}
	s.snapshot.LastUpdated = time.Now()
}

// SetAddr records the bound listen address.
func (s *Store) SetAddr(addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Addr = addr
	s.snapshot.LastUpdated = time.Now()
}

// SetError records a connection-level error. A nil err clears it.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
