package ledger

import (
	"testing"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

func entry(label string, amount float64) core.LogEntry {
	return core.LogEntry{AccountEntry: label, Amount: amount}
}

func TestHistoryPrependOrder(t *testing.T) {
	h := NewHistory()
	h.Prepend([]core.LogEntry{entry("a", 1), entry("b", 2)})
	h.Prepend([]core.LogEntry{entry("c", 3)})

	got := h.Entries()
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("entries = %d, want %d", len(got), len(want))
	}
	for i, label := range want {
		if got[i].AccountEntry != label {
			t.Errorf("entry %d = %q, want %q", i, got[i].AccountEntry, label)
		}
	}
	if h.Batches() != 2 {
		t.Errorf("batches = %d, want 2", h.Batches())
	}
}

func TestHistoryIgnoresEmptyBatch(t *testing.T) {
	h := NewHistory()
	h.Prepend(nil)
	if h.Batches() != 0 || h.Len() != 0 {
		t.Fatal("empty batch must not be recorded")
	}
}

func TestHistoryEntriesIsACopy(t *testing.T) {
	h := NewHistory()
	h.Prepend([]core.LogEntry{entry("a", 1)})
	got := h.Entries()
	got[0].AccountEntry = "mutated"
	if h.Entries()[0].AccountEntry != "a" {
		t.Fatal("caller mutation leaked into history")
	}
}
