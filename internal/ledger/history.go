package ledger

import (
	"sync"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

// History records every accepted batch for the current session, newest
// batch first. It is append-only and never persisted.
type History struct {
	mu      sync.Mutex
	entries []core.LogEntry
	batches int
}

func NewHistory() *History {
	return &History{}
}

// Prepend puts the batch in front of everything recorded so far,
// keeping the batch-internal order.
func (h *History) Prepend(batch []core.LogEntry) {
	if len(batch) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	next := make([]core.LogEntry, 0, len(batch)+len(h.entries))
	next = append(next, batch...)
	next = append(next, h.entries...)
	h.entries = next
	h.batches++
}

// Entries returns a copy of the flattened log, newest batch first.
func (h *History) Entries() []core.LogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]core.LogEntry(nil), h.entries...)
}

// Batches reports how many submissions were recorded.
func (h *History) Batches() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.batches
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
