package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123,45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err != ErrNotANumber {
		t.Fatalf("expected ErrNotANumber for invalid string, got %v", err)
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in     string
		digits int
		out    string
	}{
		{"2.344", 2, "2.34"},
		{"2.345", 2, "2.35"},
		{"2.365", 2, "2.37"},
		{"66.66", 1, "66.70"},
		{"-0.05", 1, "-0.10"},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		got := m.Round(c.digits).String()
		if got != c.out {
			t.Fatalf("round(%s, %d) got %s want %s", c.in, c.digits, got, c.out)
		}
	}
}

func TestPercentAndArithmetic(t *testing.T) {
	price := NewMoney(180)
	saved := price.Percent(stddec.NewFromInt(25))
	if got := saved.String(); got != "45.00" {
		t.Fatalf("Percent got %s want 45.00", got)
	}
	if got := price.Sub(saved).String(); got != "135.00" {
		t.Fatalf("Sub got %s want 135.00", got)
	}

	bill := NewMoney(220)
	total := bill.Add(bill.Percent(stddec.NewFromInt(12)))
	if got := total.String(); got != "246.40" {
		t.Fatalf("Add got %s want 246.40", got)
	}
	if got := total.Div(stddec.NewFromInt(2)).String(); got != "123.20" {
		t.Fatalf("Div got %s want 123.20", got)
	}
	if got := NewMoney(10.10).Mul(stddec.NewFromFloat(2.5)).String(); got != "25.25" {
		t.Fatalf("Mul got %s", got)
	}
	if !Zero().IsZero() {
		t.Fatalf("Zero should be zero")
	}
}

func TestNullAndFormat(t *testing.T) {
	m := NewMoney(135)
	n := m.Null()
	if !n.Valid || !n.Decimal.Equal(m.Decimal) {
		t.Fatalf("Null lost the amount: %+v", n)
	}
	if got, want := m.Format(1), "\u200f135.0\u00a0\u200f₪"; got != want {
		t.Fatalf("Format got %q want %q", got, want)
	}
}
