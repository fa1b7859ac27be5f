package ledger

import (
	"strings"
	"time"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
	"github.com/CuelloDiego/Cierre-de-caja/internal/form"
)

// BuildBatch turns a form snapshot into the ledger entries to submit.
// It is a pure function of the snapshot and the single shared
// timestamp; the construction order below is what downstream consumers
// of the log expect:
//
//  1. one entry per digital income channel with a positive value,
//  2. one aggregate entry for the cash count when it is positive,
//  3. one negated entry per valid expense row,
//  4. the manual daily summary and the reconciliation difference,
//     whenever a summary was reported (zero counts as reported).
//
// An all-empty form yields an empty batch; the caller decides whether
// that is an error.
func BuildBatch(snap form.Snapshot, now time.Time) []core.LogEntry {
	var batch []core.LogEntry

	entry := func(imputation, label string, amount float64) core.LogEntry {
		return core.LogEntry{
			Day:                  now,
			CloserName:           snap.CloserName,
			Shift:                snap.Shift,
			AccountingImputation: imputation,
			AccountEntry:         label,
			Amount:               amount,
		}
	}

	channels := []struct {
		label string
		value core.Amount
	}{
		{core.EntryFirstData, snap.FirstData},
		{core.EntryMercadoPago, snap.MercadoPago},
		{core.EntryPedidosYa, snap.PedidosYa},
	}
	for _, ch := range channels {
		if ch.value.OrZero() > 0 {
			batch = append(batch, entry(core.ImputationSales, ch.label, ch.value.OrZero()))
		}
	}

	// Denomination rows are not emitted individually, only their sum.
	if snap.Totals.CashSubtotal > 0 {
		batch = append(batch, entry(core.ImputationSales, core.EntryCash, snap.Totals.CashSubtotal))
	}

	for _, e := range snap.Expenses {
		amount, present := e.Amount.Get()
		if !present || amount <= 0 || strings.TrimSpace(e.Detail) == "" {
			continue
		}
		batch = append(batch, entry(core.ImputationExpense, core.ExpenseLabel(e.Detail), -amount))
	}

	if snap.DailySummary.Present() {
		batch = append(batch, entry(core.ImputationControl, core.EntryManualSheet, snap.DailySummary.OrZero()))
		batch = append(batch, entry(core.ImputationControl, core.EntryDifference, snap.Totals.Difference))
	}

	return batch
}
