package decimal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is rendered in place of an undefined value.
const Placeholder = "—"

// MaxFractionDigits is the largest precision the formatters render.
// Larger requests are capped to it and negative ones raised to zero.
const MaxFractionDigits = 6

// Direction marks keep the sign and the shekel sign in place inside
// right-to-left text.
const (
	rlm    = "\u200f"
	lrm    = "\u200e"
	nbsp   = "\u00a0"
	shekel = "₪"
)

var hebrew = message.NewPrinter(language.Hebrew)

// FormatCurrency renders value as a Hebrew-locale ILS amount with exactly
// fractionDigits digits after the point, capped at MaxFractionDigits.
// The layout is an RLM mark, an LRM mark and "-" for negative amounts, the
// grouped amount, a no-break space, an RLM mark and the shekel sign.
func FormatCurrency(value decimal.NullDecimal, fractionDigits int) string {
	if !value.Valid {
		return Placeholder
	}
	digits := clampDigits(fractionDigits)
	rounded := value.Decimal.Round(int32(digits))
	sign := ""
	if rounded.IsNegative() {
		sign = lrm + "-"
		rounded = rounded.Abs()
	}
	return rlm + sign + groupThousands(rounded, digits) + nbsp + rlm + shekel
}

// FormatPercent renders value with fractionDigits digits, capped at
// MaxFractionDigits, and a trailing "%".
func FormatPercent(value decimal.NullDecimal, fractionDigits int) string {
	if !value.Valid {
		return Placeholder
	}
	return value.Decimal.StringFixed(int32(clampDigits(fractionDigits))) + "%"
}

// groupThousands expects d already rounded to digits and non-negative.
func groupThousands(d decimal.Decimal, digits int) string {
	return hebrew.Sprintf(fmt.Sprintf("%%.%df", digits), d.InexactFloat64())
}

func clampDigits(digits int) int {
	if digits < 0 {
		return 0
	}
	if digits > MaxFractionDigits {
		return MaxFractionDigits
	}
	return digits
}
