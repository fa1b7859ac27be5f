package core

import "testing"

func TestParseShift(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"morning", true},
		{"afternoon", true},
		{"night", false},
		{"", false},
		{"Morning", false},
	}
	for _, tc := range cases {
		s, err := ParseShift(tc.in)
		if tc.ok && (err != nil || string(s) != tc.in) {
			t.Errorf("ParseShift(%q) = (%q, %v), want ok", tc.in, s, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseShift(%q) expected error", tc.in)
		}
	}
}

func TestCashEntrySubtotal(t *testing.T) {
	cases := []struct {
		entry CashEntry
		want  float64
	}{
		{CashEntry{Denomination: AmountOf(20000), Quantity: AmountOf(2)}, 40000},
		{CashEntry{Denomination: AmountOf(10000)}, 0},
		{CashEntry{Quantity: AmountOf(3)}, 0},
		{CashEntry{}, 0},
	}
	for i, tc := range cases {
		if got := tc.entry.Subtotal(); got != tc.want {
			t.Errorf("case %d: subtotal = %v, want %v", i, got, tc.want)
		}
	}
}

func TestExpenseLabel(t *testing.T) {
	if got := ExpenseLabel("hielo"); got != "Gasto: hielo" {
		t.Fatalf("got %q", got)
	}
}
