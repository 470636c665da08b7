package decimal

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Bounds of float64: larger magnitudes are not finite and smaller ones
// underflow to zero.
const (
	maxMagnitude = 309
	minMagnitude = -323
)

// ErrNotANumber is returned when text does not hold a finite number.
var ErrNotANumber = errors.New("not a finite number")

// ParseDecimal parses user-entered text into a finite number. The first comma
// is treated as the decimal separator, so "12,5" and "12.5" are equal.
// Empty, non-numeric or malformed text yields an invalid NullDecimal.
func ParseDecimal(text string) decimal.NullDecimal {
	return parseFinite(strings.Replace(text, ",", ".", 1), false)
}

// ParseCount parses a plain number such as a head count. Commas are not
// accepted and blank text counts as zero.
func ParseCount(text string) decimal.NullDecimal {
	return parseFinite(text, true)
}

func parseFinite(text string, blankIsZero bool) decimal.NullDecimal {
	s := strings.TrimSpace(text)
	if s == "" {
		if blankIsZero {
			return decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
		}
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	if d.IsZero() {
		return decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
	}
	// magnitude is roughly 10^(exponent + coefficient digits)
	magnitude := int64(d.Exponent()) + int64(len(d.Abs().Coefficient().String()))
	switch {
	case magnitude > maxMagnitude:
		return decimal.NullDecimal{}
	case magnitude < minMagnitude:
		return decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
	}
	// the digit count is only an estimate near the float64 limits
	switch f := d.InexactFloat64(); {
	case math.IsInf(f, 0):
		return decimal.NullDecimal{}
	case f == 0:
		return decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
