// Package core holds the domain types of the cash-drawer closing form.
//
// This file implements Amount, a numeric value that distinguishes
// "absent" (never entered) from zero. Absent values take part in sums
// as zero but keep their identity for presence checks.
package core

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a number-or-absent field. The zero value is absent.
type Amount struct {
	value float64
	valid bool
}

// AmountOf returns a present Amount. Non-finite input collapses to absent.
func AmountOf(v float64) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Amount{}
	}
	return Amount{value: v, valid: true}
}

// ParseAmount coerces raw user input into an Amount. Empty or
// non-numeric input becomes absent rather than an error; a decimal
// comma is accepted alongside the dot.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Amount{}
	}
	return AmountOf(v)
}

// Present reports whether a value was entered. Zero is a valid present value.
func (a Amount) Present() bool {
	return a.valid
}

// OrZero returns the value, or 0 when absent.
func (a Amount) OrZero() float64 {
	if !a.valid {
		return 0
	}
	return a.value
}

// Get returns the value and whether it is present.
func (a Amount) Get() (float64, bool) {
	return a.value, a.valid
}

// MarshalJSON encodes absent as null so the UI can tell it from zero.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

// UnmarshalJSON accepts a number, a quoted string (coerced like raw
// input), or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*a = Amount{}
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ParseAmount(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = AmountOf(v)
	return nil
}
