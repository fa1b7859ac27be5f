package core

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		present bool
		value   float64
	}{
		{"100", true, 100},
		{" 12.5 ", true, 12.5},
		{"12,5", true, 12.5},
		{"0", true, 0},
		{"-15", true, -15},
		{"", false, 0},
		{"   ", false, 0},
		{"abc", false, 0},
		{"12abc", false, 0},
	}
	for _, tc := range cases {
		a := ParseAmount(tc.in)
		if a.Present() != tc.present {
			t.Errorf("ParseAmount(%q) present = %v, want %v", tc.in, a.Present(), tc.present)
		}
		if a.OrZero() != tc.value {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, a.OrZero(), tc.value)
		}
	}
}

func TestAmountOfNonFinite(t *testing.T) {
	if AmountOf(math.NaN()).Present() {
		t.Error("NaN should collapse to absent")
	}
	if AmountOf(math.Inf(1)).Present() {
		t.Error("Inf should collapse to absent")
	}
}

func TestAmountZeroIsPresent(t *testing.T) {
	zero := AmountOf(0)
	if !zero.Present() {
		t.Fatal("explicit zero must be present")
	}
	var absent Amount
	if absent.Present() {
		t.Fatal("zero value must be absent")
	}
	if zero.OrZero() != absent.OrZero() {
		t.Fatal("both should sum as zero")
	}
}

func TestAmountJSON(t *testing.T) {
	t.Run("absent marshals as null", func(t *testing.T) {
		data, err := json.Marshal(Amount{})
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "null" {
			t.Fatalf("got %s, want null", data)
		}
	})

	t.Run("null unmarshals as absent", func(t *testing.T) {
		var a Amount
		if err := json.Unmarshal([]byte("null"), &a); err != nil {
			t.Fatal(err)
		}
		if a.Present() {
			t.Fatal("null should be absent")
		}
	})

	t.Run("number", func(t *testing.T) {
		var a Amount
		if err := json.Unmarshal([]byte("40085"), &a); err != nil {
			t.Fatal(err)
		}
		if v, ok := a.Get(); !ok || v != 40085 {
			t.Fatalf("got (%v, %v), want (40085, true)", v, ok)
		}
	})

	t.Run("string is coerced", func(t *testing.T) {
		var a Amount
		if err := json.Unmarshal([]byte(`"12,5"`), &a); err != nil {
			t.Fatal(err)
		}
		if a.OrZero() != 12.5 {
			t.Fatalf("got %v, want 12.5", a.OrZero())
		}
		if err := json.Unmarshal([]byte(`"garbage"`), &a); err != nil {
			t.Fatal(err)
		}
		if a.Present() {
			t.Fatal("unparseable string should coerce to absent")
		}
	})
}
