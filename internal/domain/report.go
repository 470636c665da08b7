package domain

import (
	"github.com/shopspring/decimal"

	pkgdecimal "github.com/Design-Arena-Gens/agentic-6b10b7fb/pkg/decimal"
)

// ValueKind selects how a result row is formatted
type ValueKind string

const (
	ValueCurrency ValueKind = "currency"
	ValuePercent  ValueKind = "percent"
)

// InputField describes one labelled input of a calculator card
type InputField struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Placeholder string `json:"placeholder"`
	InputMode   string `json:"input_mode"` // "decimal" or "numeric"
}

// ResultRow is one read-only derived value of a calculator card
type ResultRow struct {
	Key    string              `json:"key"`
	Label  string              `json:"label"`
	Kind   ValueKind           `json:"kind"`
	Digits int                 `json:"digits"`
	Value  decimal.NullDecimal `json:"value"`
}

// Display formats the row value, or returns the placeholder when undefined.
func (r ResultRow) Display() string {
	if r.Kind == ValuePercent {
		return pkgdecimal.FormatPercent(r.Value, r.Digits)
	}
	return pkgdecimal.FormatCurrency(r.Value, r.Digits)
}

// CalculatorReport is the rendered state of one calculator
type CalculatorReport struct {
	Kind        CalculatorKind `json:"kind"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Fields      []InputField   `json:"fields"`
	Rows        []ResultRow    `json:"rows"`

	// Completion drives the progress bar; only the goal tracker sets it.
	Completion     decimal.NullDecimal `json:"-"`
	HasProgressBar bool                `json:"-"`
}

// BarWidth returns the progress bar fill as a CSS percentage number.
// An undefined completion draws an empty bar.
func (c CalculatorReport) BarWidth() string {
	if !c.Completion.Valid {
		return "0"
	}
	return c.Completion.Decimal.StringFixed(1)
}

// Row looks up a result row by key
func (c CalculatorReport) Row(key string) (ResultRow, bool) {
	for _, r := range c.Rows {
		if r.Key == key {
			return r, true
		}
	}
	return ResultRow{}, false
}

// FieldLabel returns the label of an input field, or the key itself
func (c CalculatorReport) FieldLabel(key string) string {
	for _, f := range c.Fields {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}

// Report is the view model shared by all output formatters
type Report struct {
	Site        SiteSettings       `json:"site"`
	Content     PageContent        `json:"content"`
	Calculators []CalculatorReport `json:"calculators"`
}

// Calculator returns the report of the given calculator, if present
func (r *Report) Calculator(kind CalculatorKind) (CalculatorReport, bool) {
	for _, c := range r.Calculators {
		if c.Kind == kind {
			return c, true
		}
	}
	return CalculatorReport{}, false
}
