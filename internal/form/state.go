// Package form implements the closing form: the raw input state and
// the derived totals computed from it.
//
// The state is guarded by a single mutex so the HTTP layer can call
// into it concurrently; each mutation runs to completion before the
// next one is observed. List-valued fields are copy-on-write: a
// snapshot taken before an edit never sees the edit.
package form

import (
	"sync"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

// DefaultDenominations seeds the cash count with the bills a drawer
// usually holds. Quantities start absent.
var DefaultDenominations = []float64{20000, 10000, 2000}

// State is the form state store. The zero value is not usable; use New.
type State struct {
	mu sync.Mutex

	closerName   string
	shift        core.Shift
	firstData    core.Amount
	mercadoPago  core.Amount
	pedidosYa    core.Amount
	dailySummary core.Amount
	cash         []core.CashEntry
	expenses     []core.ExpenseEntry

	seedDenominations []float64

	// Revision counters per dependency group; the totals cache is
	// stamped against these so a mutation invalidates exactly the
	// values that depend on it.
	cashRev    uint64
	expenseRev uint64
	digitalRev uint64
	summaryRev uint64

	totals totalsCache
}

// Snapshot is a stable copy of the form at one instant. Slices inside
// it are never mutated by later edits.
type Snapshot struct {
	CloserName   string
	Shift        core.Shift
	FirstData    core.Amount
	MercadoPago  core.Amount
	PedidosYa    core.Amount
	DailySummary core.Amount
	Cash         []core.CashEntry
	Expenses     []core.ExpenseEntry
	Totals       Totals
}

// New returns a form seeded with the default denominations.
func New() *State {
	return NewWithSeed(DefaultDenominations)
}

// NewWithSeed returns a form whose cash count starts with one row per
// denomination. An empty seed falls back to the default set.
func NewWithSeed(denominations []float64) *State {
	if len(denominations) == 0 {
		denominations = DefaultDenominations
	}
	s := &State{seedDenominations: append([]float64(nil), denominations...)}
	s.mu.Lock()
	s.resetLocked()
	s.mu.Unlock()
	return s
}

// Reset returns every field to its default seed: empty name, morning
// shift, absent scalars, the seeded cash rows and one blank expense.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *State) resetLocked() {
	s.closerName = ""
	s.shift = core.Morning
	s.firstData = core.Amount{}
	s.mercadoPago = core.Amount{}
	s.pedidosYa = core.Amount{}
	s.dailySummary = core.Amount{}

	cash := make([]core.CashEntry, len(s.seedDenominations))
	for i, d := range s.seedDenominations {
		cash[i] = core.CashEntry{Denomination: core.AmountOf(d)}
	}
	s.cash = cash
	s.expenses = make([]core.ExpenseEntry, 1)

	s.cashRev++
	s.expenseRev++
	s.digitalRev++
	s.summaryRev++
}

func (s *State) SetCloserName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closerName = name
}

func (s *State) SetShift(shift core.Shift) error {
	if !shift.Valid() {
		return core.ErrInvalidShift
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shift = shift
	return nil
}

func (s *State) SetFirstData(a core.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.firstData = a
	s.digitalRev++
}

func (s *State) SetMercadoPago(a core.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mercadoPago = a
	s.digitalRev++
}

func (s *State) SetPedidosYa(a core.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pedidosYa = a
	s.digitalRev++
}

func (s *State) SetDailySummary(a core.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dailySummary = a
	s.summaryRev++
}

// AddCashEntry appends a blank cash row.
func (s *State) AddCashEntry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]core.CashEntry, len(s.cash)+1)
	copy(next, s.cash)
	s.cash = next
	s.cashRev++
}

// RemoveCashEntry drops the row at i, shifting later rows down.
// Out-of-range indices are ignored.
func (s *State) RemoveCashEntry(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cash) {
		return
	}
	next := make([]core.CashEntry, 0, len(s.cash)-1)
	next = append(next, s.cash[:i]...)
	next = append(next, s.cash[i+1:]...)
	s.cash = next
	s.cashRev++
}

func (s *State) SetCashDenomination(i int, a core.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cash) {
		return
	}
	next := append([]core.CashEntry(nil), s.cash...)
	next[i].Denomination = a
	s.cash = next
	s.cashRev++
}

func (s *State) SetCashQuantity(i int, a core.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.cash) {
		return
	}
	next := append([]core.CashEntry(nil), s.cash...)
	next[i].Quantity = a
	s.cash = next
	s.cashRev++
}

// AddExpense appends a blank expense row.
func (s *State) AddExpense() {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]core.ExpenseEntry, len(s.expenses)+1)
	copy(next, s.expenses)
	s.expenses = next
	s.expenseRev++
}

// RemoveExpense drops the row at i. Out-of-range indices are ignored.
func (s *State) RemoveExpense(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.expenses) {
		return
	}
	next := make([]core.ExpenseEntry, 0, len(s.expenses)-1)
	next = append(next, s.expenses[:i]...)
	next = append(next, s.expenses[i+1:]...)
	s.expenses = next
	s.expenseRev++
}

func (s *State) SetExpenseDetail(i int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.expenses) {
		return
	}
	next := append([]core.ExpenseEntry(nil), s.expenses...)
	next[i].Detail = detail
	s.expenses = next
	s.expenseRev++
}

func (s *State) SetExpenseAmount(i int, a core.Amount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.expenses) {
		return
	}
	next := append([]core.ExpenseEntry(nil), s.expenses...)
	next[i].Amount = a
	s.expenses = next
	s.expenseRev++
}

// Snapshot returns a stable copy of the form plus its current totals.
// The slices are the copy-on-write backing arrays, which are never
// mutated in place, so the snapshot stays valid across later edits.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		CloserName:   s.closerName,
		Shift:        s.shift,
		FirstData:    s.firstData,
		MercadoPago:  s.mercadoPago,
		PedidosYa:    s.pedidosYa,
		DailySummary: s.dailySummary,
		Cash:         s.cash,
		Expenses:     s.expenses,
		Totals:       s.totalsLocked(),
	}
}
