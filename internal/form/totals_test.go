package form

import (
	"testing"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

func TestCashSubtotal(t *testing.T) {
	s := NewWithSeed([]float64{20000, 10000})
	s.SetCashQuantity(0, core.AmountOf(2))
	// row 1 keeps an absent quantity and counts as zero
	if got := s.CashSubtotal(); got != 40000 {
		t.Fatalf("cash subtotal = %v, want 40000", got)
	}
}

func TestDerivedFormulas(t *testing.T) {
	s := NewWithSeed([]float64{20000})
	s.SetFirstData(core.AmountOf(100))
	s.SetMercadoPago(core.AmountOf(200))
	s.SetCashQuantity(0, core.AmountOf(2))
	s.AddExpense()
	s.SetExpenseAmount(0, core.AmountOf(15))
	s.SetExpenseAmount(1, core.AmountOf(5))
	s.SetDailySummary(core.AmountOf(40085))

	tot := s.Totals()
	if tot.DigitalIncomeSubtotal != 300 {
		t.Errorf("digital = %v, want 300", tot.DigitalIncomeSubtotal)
	}
	if tot.CashSubtotal != 40000 {
		t.Errorf("cash = %v, want 40000", tot.CashSubtotal)
	}
	if tot.ExpensesSubtotal != 20 {
		t.Errorf("expenses = %v, want 20", tot.ExpensesSubtotal)
	}
	if tot.TotalIncome != 40300 {
		t.Errorf("total income = %v, want 40300", tot.TotalIncome)
	}
	if tot.NetTotal != 40280 {
		t.Errorf("net = %v, want 40280", tot.NetTotal)
	}
	if want := tot.DigitalIncomeSubtotal + tot.CashSubtotal + tot.ExpensesSubtotal; tot.AbsoluteTotal != want {
		t.Errorf("absolute = %v, want %v", tot.AbsoluteTotal, want)
	}
	if want := tot.AbsoluteTotal - 40085; tot.Difference != want {
		t.Errorf("difference = %v, want %v", tot.Difference, want)
	}
}

func TestDifferenceWithAbsentSummary(t *testing.T) {
	s := NewWithSeed([]float64{1000})
	s.SetCashQuantity(0, core.AmountOf(1))
	if got := s.Difference(); got != 1000 {
		t.Fatalf("difference with absent summary = %v, want absoluteTotal", got)
	}
	// Zero is a present value, not absent.
	s.SetDailySummary(core.AmountOf(0))
	if got := s.Difference(); got != 1000 {
		t.Fatalf("difference with zero summary = %v, want 1000", got)
	}
}

func TestDerivedValuesNeverStale(t *testing.T) {
	s := NewWithSeed([]float64{100})

	if got := s.AbsoluteTotal(); got != 0 {
		t.Fatalf("initial absolute = %v", got)
	}
	// Read again to exercise the cached path, then mutate each
	// dependency group and confirm the reads move with it.
	_ = s.AbsoluteTotal()

	s.SetCashQuantity(0, core.AmountOf(2))
	if got := s.AbsoluteTotal(); got != 200 {
		t.Fatalf("after cash edit absolute = %v, want 200", got)
	}
	s.SetFirstData(core.AmountOf(50))
	if got := s.AbsoluteTotal(); got != 250 {
		t.Fatalf("after income edit absolute = %v, want 250", got)
	}
	s.AddExpense()
	s.SetExpenseAmount(0, core.AmountOf(10))
	if got := s.AbsoluteTotal(); got != 260 {
		t.Fatalf("after expense edit absolute = %v, want 260", got)
	}
	s.SetDailySummary(core.AmountOf(300))
	if got := s.Difference(); got != -40 {
		t.Fatalf("after summary edit difference = %v, want -40", got)
	}
	s.RemoveCashEntry(0)
	if got := s.CashSubtotal(); got != 0 {
		t.Fatalf("after row removal cash = %v, want 0", got)
	}
}

func TestAbsentParticipatesAsZero(t *testing.T) {
	s := New()
	tot := s.Totals()
	if tot.CashSubtotal != 0 || tot.AbsoluteTotal != 0 || tot.Difference != 0 {
		t.Fatalf("empty form totals should all be zero: %+v", tot)
	}
}
