package ledger

import (
	"testing"
	"time"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
	"github.com/CuelloDiego/Cierre-de-caja/internal/form"
)

var testDay = time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC)

func TestBuildBatchWorkedExample(t *testing.T) {
	s := form.NewWithSeed([]float64{20000, 10000})
	s.SetCloserName("diego")
	s.SetFirstData(core.AmountOf(100))
	s.SetCashQuantity(0, core.AmountOf(2))
	s.AddExpense()
	s.SetExpenseDetail(0, "hielo")
	s.SetExpenseAmount(0, core.AmountOf(15))
	s.SetDailySummary(core.AmountOf(40085))

	batch := BuildBatch(s.Snapshot(), testDay)

	want := []struct {
		entry  string
		amount float64
	}{
		{core.EntryFirstData, 100},
		{core.EntryCash, 40000},
		{core.ExpenseLabel("hielo"), -15},
		{core.EntryManualSheet, 40085},
		{core.EntryDifference, 30}, // (100+40000+15) - 40085
	}
	if len(batch) != len(want) {
		t.Fatalf("batch has %d entries, want %d: %+v", len(batch), len(want), batch)
	}
	for i, w := range want {
		got := batch[i]
		if got.AccountEntry != w.entry || got.Amount != w.amount {
			t.Errorf("entry %d = (%q, %v), want (%q, %v)", i, got.AccountEntry, got.Amount, w.entry, w.amount)
		}
		if !got.Day.Equal(testDay) {
			t.Errorf("entry %d timestamp = %v, want the shared %v", i, got.Day, testDay)
		}
		if got.CloserName != "diego" || got.Shift != core.Morning {
			t.Errorf("entry %d identity = (%q, %q)", i, got.CloserName, got.Shift)
		}
	}
}

func TestBuildBatchEmptyForm(t *testing.T) {
	s := form.New()
	s.SetCloserName("diego")
	if batch := BuildBatch(s.Snapshot(), testDay); len(batch) != 0 {
		t.Fatalf("empty form should yield empty batch, got %+v", batch)
	}
}

func TestBuildBatchChannelOrder(t *testing.T) {
	s := form.New()
	s.SetCloserName("ana")
	s.SetPedidosYa(core.AmountOf(3))
	s.SetFirstData(core.AmountOf(1))
	s.SetMercadoPago(core.AmountOf(2))

	batch := BuildBatch(s.Snapshot(), testDay)
	labels := []string{core.EntryFirstData, core.EntryMercadoPago, core.EntryPedidosYa}
	if len(batch) != 3 {
		t.Fatalf("got %d entries", len(batch))
	}
	for i, l := range labels {
		if batch[i].AccountEntry != l {
			t.Errorf("entry %d = %q, want %q", i, batch[i].AccountEntry, l)
		}
		if batch[i].AccountingImputation != core.ImputationSales {
			t.Errorf("entry %d imputation = %q", i, batch[i].AccountingImputation)
		}
	}
}

func TestBuildBatchExpenseFiltering(t *testing.T) {
	s := form.New()
	s.SetCloserName("ana")
	// row 0: valid; then one per failure mode
	s.SetExpenseDetail(0, "hielo")
	s.SetExpenseAmount(0, core.AmountOf(15))
	s.AddExpense()
	s.SetExpenseAmount(1, core.AmountOf(10)) // empty detail
	s.AddExpense()
	s.SetExpenseDetail(2, "carbon") // absent amount
	s.AddExpense()
	s.SetExpenseDetail(3, "flete")
	s.SetExpenseAmount(3, core.AmountOf(0)) // present but not positive
	s.AddExpense()
	s.SetExpenseDetail(4, "   ") // whitespace-only detail
	s.SetExpenseAmount(4, core.AmountOf(5))

	batch := BuildBatch(s.Snapshot(), testDay)
	if len(batch) != 1 {
		t.Fatalf("got %d entries, want only the valid row: %+v", len(batch), batch)
	}
	if batch[0].AccountEntry != core.ExpenseLabel("hielo") || batch[0].Amount != -15 {
		t.Fatalf("entry = (%q, %v)", batch[0].AccountEntry, batch[0].Amount)
	}
	if batch[0].AccountingImputation != core.ImputationExpense {
		t.Fatalf("imputation = %q", batch[0].AccountingImputation)
	}
}

func TestBuildBatchZeroSummaryStillEmitsControlRows(t *testing.T) {
	s := form.New()
	s.SetCloserName("ana")
	s.SetFirstData(core.AmountOf(100))
	s.SetDailySummary(core.AmountOf(0))

	batch := BuildBatch(s.Snapshot(), testDay)
	if len(batch) != 3 {
		t.Fatalf("got %d entries, want income + two control rows: %+v", len(batch), batch)
	}
	if batch[1].AccountEntry != core.EntryManualSheet || batch[1].Amount != 0 {
		t.Errorf("manual row = (%q, %v)", batch[1].AccountEntry, batch[1].Amount)
	}
	if batch[2].AccountEntry != core.EntryDifference || batch[2].Amount != 100 {
		t.Errorf("difference row = (%q, %v)", batch[2].AccountEntry, batch[2].Amount)
	}
}

func TestBuildBatchSkipsNonPositiveChannels(t *testing.T) {
	s := form.New()
	s.SetCloserName("ana")
	s.SetFirstData(core.AmountOf(0))
	s.SetMercadoPago(core.AmountOf(-5))
	if batch := BuildBatch(s.Snapshot(), testDay); len(batch) != 0 {
		t.Fatalf("non-positive channels should be skipped: %+v", batch)
	}
}
