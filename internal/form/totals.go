package form

// Totals carries every derived value the form exposes. NetTotal is
// display-only; submission works off AbsoluteTotal and Difference.
type Totals struct {
	CashSubtotal          float64 `json:"cashSubtotal"`
	ExpensesSubtotal      float64 `json:"expensesSubtotal"`
	DigitalIncomeSubtotal float64 `json:"digitalIncomeSubtotal"`
	TotalIncome           float64 `json:"totalIncome"`
	NetTotal              float64 `json:"netTotal"`
	AbsoluteTotal         float64 `json:"absoluteTotal"`
	Difference            float64 `json:"difference"`
}

// Dependency groups a derived value can be stamped against.
type depMask uint8

const (
	depCash depMask = 1 << iota
	depExpense
	depDigital
	depSummary
)

// memo caches one derived value together with the revision of each
// dependency group at compute time. A read recomputes only when one of
// the value's own dependencies moved.
type memo struct {
	stamp [4]uint64
	valid bool
	value float64
}

type totalsCache struct {
	cashSubtotal     memo
	expensesSubtotal memo
	digitalSubtotal  memo
	totalIncome      memo
	netTotal         memo
	absoluteTotal    memo
	difference       memo
}

func (m *memo) get(deps depMask, cur [4]uint64, compute func() float64) float64 {
	if m.valid {
		fresh := true
		for i := 0; i < 4; i++ {
			if deps&(1<<uint(i)) != 0 && m.stamp[i] != cur[i] {
				fresh = false
				break
			}
		}
		if fresh {
			return m.value
		}
	}
	m.value = compute()
	m.stamp = cur
	m.valid = true
	return m.value
}

func (s *State) revs() [4]uint64 {
	return [4]uint64{s.cashRev, s.expenseRev, s.digitalRev, s.summaryRev}
}

func (s *State) CashSubtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cashSubtotalLocked()
}

func (s *State) ExpensesSubtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expensesSubtotalLocked()
}

func (s *State) DigitalIncomeSubtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.digitalSubtotalLocked()
}

func (s *State) TotalIncome() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalIncomeLocked()
}

func (s *State) NetTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.netTotalLocked()
}

func (s *State) AbsoluteTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.absoluteTotalLocked()
}

// Difference is the reconciliation signal: derived absolute total minus
// the manually reported daily summary.
func (s *State) Difference() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.differenceLocked()
}

// Totals evaluates every derived value at once.
func (s *State) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

func (s *State) totalsLocked() Totals {
	return Totals{
		CashSubtotal:          s.cashSubtotalLocked(),
		ExpensesSubtotal:      s.expensesSubtotalLocked(),
		DigitalIncomeSubtotal: s.digitalSubtotalLocked(),
		TotalIncome:           s.totalIncomeLocked(),
		NetTotal:              s.netTotalLocked(),
		AbsoluteTotal:         s.absoluteTotalLocked(),
		Difference:            s.differenceLocked(),
	}
}

func (s *State) cashSubtotalLocked() float64 {
	return s.totals.cashSubtotal.get(depCash, s.revs(), func() float64 {
		var total float64
		for _, e := range s.cash {
			total += e.Subtotal()
		}
		return total
	})
}

func (s *State) expensesSubtotalLocked() float64 {
	return s.totals.expensesSubtotal.get(depExpense, s.revs(), func() float64 {
		var total float64
		for _, e := range s.expenses {
			total += e.Amount.OrZero()
		}
		return total
	})
}

func (s *State) digitalSubtotalLocked() float64 {
	return s.totals.digitalSubtotal.get(depDigital, s.revs(), func() float64 {
		return s.firstData.OrZero() + s.mercadoPago.OrZero() + s.pedidosYa.OrZero()
	})
}

func (s *State) totalIncomeLocked() float64 {
	return s.totals.totalIncome.get(depDigital|depCash, s.revs(), func() float64 {
		return s.digitalSubtotalLocked() + s.cashSubtotalLocked()
	})
}

func (s *State) netTotalLocked() float64 {
	return s.totals.netTotal.get(depDigital|depCash|depExpense, s.revs(), func() float64 {
		return s.totalIncomeLocked() - s.expensesSubtotalLocked()
	})
}

// absoluteTotal sums magnitudes: expense amounts are entered positive,
// so they add rather than subtract here.
func (s *State) absoluteTotalLocked() float64 {
	return s.totals.absoluteTotal.get(depDigital|depCash|depExpense, s.revs(), func() float64 {
		return s.totalIncomeLocked() + s.expensesSubtotalLocked()
	})
}

func (s *State) differenceLocked() float64 {
	return s.totals.difference.get(depDigital|depCash|depExpense|depSummary, s.revs(), func() float64 {
		return s.absoluteTotalLocked() - s.dailySummary.OrZero()
	})
}
