package sheets

import (
	"testing"
	"time"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

func TestRowsFor(t *testing.T) {
	day := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	batch := []core.LogEntry{
		{Day: day, CloserName: "diego", Shift: core.Afternoon, AccountingImputation: core.ImputationExpense, AccountEntry: core.ExpenseLabel("hielo"), Amount: -15},
	}

	rows := rowsFor(batch)
	if len(rows) != 1 {
		t.Fatalf("rows = %d", len(rows))
	}
	want := []any{"2025-06-01T22:00:00Z", "diego", "afternoon", "Gastos", "Gasto: hielo", float64(-15)}
	if len(rows[0]) != len(want) {
		t.Fatalf("columns = %d, want %d", len(rows[0]), len(want))
	}
	for i := range want {
		if rows[0][i] != want[i] {
			t.Errorf("column %d = %v, want %v", i, rows[0][i], want[i])
		}
	}
}
