package core

import (
	"errors"
	"time"
)

const (
	Morning   Shift = "morning"
	Afternoon Shift = "afternoon"
)

// Accounting imputations (category labels) used in ledger entries.
const (
	ImputationSales   = "Ventas"
	ImputationExpense = "Gastos"
	ImputationControl = "Control"
)

// Fixed account-entry labels for the income channels and control rows.
const (
	EntryFirstData   = "First Data"
	EntryMercadoPago = "Mercado Pago"
	EntryPedidosYa   = "Pedidos Ya"
	EntryCash        = "Efectivo"
	EntryManualSheet = "Planilla manual"
	EntryDifference  = "Diferencia"
)

type (
	Shift string

	// CashEntry is one row of the cash count. Rows have no durable
	// identity; their list index is the only handle within a session.
	CashEntry struct {
		Denomination Amount `json:"denomination"`
		Quantity     Amount `json:"quantity"`
	}

	// ExpenseEntry is one discretionary outflow entered by the closer.
	ExpenseEntry struct {
		Detail string `json:"detail"`
		Amount Amount `json:"amount"`
	}

	// LogEntry is one immutable ledger line. A negative amount records
	// an expense, a positive one an income.
	LogEntry struct {
		Day                  time.Time `json:"day"`
		CloserName           string    `json:"closerName"`
		Shift                Shift     `json:"shift"`
		AccountingImputation string    `json:"accountingImputation"`
		AccountEntry         string    `json:"accountEntry"`
		Amount               float64   `json:"amount"`
	}
)

var (
	ErrNameRequired       = errors.New("closer name and shift required")
	ErrEmptyBatch         = errors.New("nothing to submit")
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrInvalidShift       = errors.New("invalid shift")
)

// ParseShift maps a wire literal to a Shift.
func ParseShift(s string) (Shift, error) {
	switch Shift(s) {
	case Morning, Afternoon:
		return Shift(s), nil
	}
	return "", ErrInvalidShift
}

func (s Shift) Valid() bool {
	return s == Morning || s == Afternoon
}

// Subtotal is denomination times quantity, with absent fields as zero.
func (c CashEntry) Subtotal() float64 {
	return c.Denomination.OrZero() * c.Quantity.OrZero()
}

// ExpenseLabel builds the account-entry label for an expense row.
func ExpenseLabel(detail string) string {
	return "Gasto: " + detail
}
