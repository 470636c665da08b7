package decimal

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value  string
		digits int
		want   string
	}{
		{"135", 1, "\u200f135.0\u00a0\u200f₪"},
		{"45", 1, "\u200f45.0\u00a0\u200f₪"},
		{"26.4", 2, "\u200f26.40\u00a0\u200f₪"},
		{"246.4", 2, "\u200f246.40\u00a0\u200f₪"},
		{"6000", 2, "\u200f6,000.00\u00a0\u200f₪"},
		{"1234567.891", 2, "\u200f1,234,567.89\u00a0\u200f₪"},
		{"-6000", 2, "\u200f\u200e-6,000.00\u00a0\u200f₪"},
		{"0.04", 1, "\u200f0.0\u00a0\u200f₪"},
		{"-0.04", 1, "\u200f0.0\u00a0\u200f₪"},
		{"2.25", 1, "\u200f2.3\u00a0\u200f₪"},
		{"99.5", 0, "\u200f100\u00a0\u200f₪"},
	}
	for _, c := range cases {
		got := FormatCurrency(dec(c.value), c.digits)
		assert.Equal(t, c.want, got, "FormatCurrency(%s, %d)", c.value, c.digits)
	}
}

func TestFormatCurrencyDirectionMarks(t *testing.T) {
	assert.Equal(t, "\u200f135.0\u00a0\u200f₪", FormatCurrency(dec("135"), 1))
	assert.Equal(t, "\u200f\u200e-50.0\u00a0\u200f₪", FormatCurrency(dec("-50"), 1))

	negative := FormatCurrency(dec("-2000"), 2)
	assert.True(t, strings.HasPrefix(negative, "\u200f\u200e-"), "the minus is held left-to-right: %q", negative)
	assert.True(t, strings.HasSuffix(negative, "\u00a0\u200f₪"), "the shekel sign follows an RLM mark: %q", negative)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "66.7%", FormatPercent(dec("66.66666666666667"), 1))
	assert.Equal(t, "-33.3%", FormatPercent(dec("-33.33333333333333"), 1))
	assert.Equal(t, "100.0%", FormatPercent(dec("100"), 1))
	assert.Equal(t, "12.35%", FormatPercent(dec("12.3456"), 2))
	assert.Equal(t, "1234.5%", FormatPercent(dec("1234.5"), 1), "percent is not grouped")
	assert.Equal(t, "0.0%", FormatPercent(dec("-0.01"), 1))
}

func TestFormatUndefinedIsPlaceholderForAnyDigits(t *testing.T) {
	for digits := -1; digits <= 8; digits++ {
		assert.Equal(t, Placeholder, FormatCurrency(decimal.NullDecimal{}, digits))
		assert.Equal(t, Placeholder, FormatPercent(decimal.NullDecimal{}, digits))
	}
	assert.Equal(t, "—", Placeholder)
}

func TestFormatClampsFractionDigits(t *testing.T) {
	assert.Equal(t, 6, MaxFractionDigits)
	assert.Equal(t, "3%", FormatPercent(dec("3.14159"), -2))
	assert.Equal(t, "3.141593%", FormatPercent(dec("3.1415926"), 12))
	assert.Equal(t, "\u200f3.141593\u00a0\u200f₪", FormatCurrency(dec("3.1415926"), MaxFractionDigits+2))
	assert.Equal(t, FormatCurrency(dec("3.1415926"), MaxFractionDigits), FormatCurrency(dec("3.1415926"), 20))
}
