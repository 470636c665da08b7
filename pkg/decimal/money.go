package decimal

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money represents a shekel amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from user-entered text.
// A comma is accepted as the decimal separator.
func NewMoneyFromString(value string) (Money, error) {
	parsed := ParseDecimal(value)
	if !parsed.Valid {
		return Money{}, ErrNotANumber
	}
	return Money{parsed.Decimal}, nil
}

// Round rounds the amount to the given number of fraction digits (half away from zero)
func (m Money) Round(digits int) Money {
	return Money{m.Decimal.Round(int32(digits))}
}

// Percent returns percent% of the amount
func (m Money) Percent(percent decimal.Decimal) Money {
	return Money{m.Decimal.Mul(percent).Div(hundred)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor. The caller guards against a zero factor.
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Null wraps the amount as a defined optional value
func (m Money) Null() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: m.Decimal, Valid: true}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two fraction digits and no currency sign
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as a Hebrew-locale shekel string
func (m Money) Format(digits int) string {
	return FormatCurrency(m.Null(), digits)
}
