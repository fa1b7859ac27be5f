// Package memory is an in-process gateway for development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
	"github.com/CuelloDiego/Cierre-de-caja/internal/ledger"
)

// Store accepts every batch and keeps it around for inspection.
type Store struct {
	mu      sync.Mutex
	batches [][]core.LogEntry

	// Err, when set, is returned by Post instead of recording.
	Err error
}

var _ ledger.Poster = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) Post(_ context.Context, batch []core.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.batches = append(s.batches, append([]core.LogEntry(nil), batch...))
	return nil
}

// Batches returns copies of everything posted so far, oldest first.
func (s *Store) Batches() [][]core.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]core.LogEntry, len(s.batches))
	for i, b := range s.batches {
		out[i] = append([]core.LogEntry(nil), b...)
	}
	return out
}
