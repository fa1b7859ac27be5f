package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

func TestStoreRecordsBatches(t *testing.T) {
	s := New()
	batch := []core.LogEntry{{AccountEntry: "a", Amount: 1}}
	if err := s.Post(context.Background(), batch); err != nil {
		t.Fatal(err)
	}

	batch[0].Amount = 99 // caller edits must not leak in
	got := s.Batches()
	if len(got) != 1 || len(got[0]) != 1 {
		t.Fatalf("batches = %+v", got)
	}
	if got[0][0].Amount != 1 {
		t.Fatalf("stored amount = %v, want 1", got[0][0].Amount)
	}
}

func TestStoreInjectedFailure(t *testing.T) {
	s := New()
	s.Err = errors.New("down")
	if err := s.Post(context.Background(), nil); err == nil {
		t.Fatal("expected injected error")
	}
	if len(s.Batches()) != 0 {
		t.Fatal("failed post must not record")
	}
}
