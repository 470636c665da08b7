package domain

import (
	"github.com/shopspring/decimal"
)

// CalculatorKind identifies one of the interactive calculators
type CalculatorKind string

const (
	CalculatorDiscount CalculatorKind = "discount"
	CalculatorTip      CalculatorKind = "tip"
	CalculatorProgress CalculatorKind = "progress"
)

// CalculatorKinds lists the calculators in page order
var CalculatorKinds = []CalculatorKind{CalculatorDiscount, CalculatorTip, CalculatorProgress}

// Valid reports whether k names a known calculator
func (k CalculatorKind) Valid() bool {
	for _, known := range CalculatorKinds {
		if k == known {
			return true
		}
	}
	return false
}

// DiscountInput holds the raw text of the discount calculator fields
type DiscountInput struct {
	OriginalPrice   string `yaml:"original_price" toml:"original_price" json:"original_price"`
	DiscountPercent string `yaml:"discount_percent" toml:"discount_percent" json:"discount_percent"`
}

// DiscountResult is derived from DiscountInput. Both fields are invalid when
// either input fails to parse.
type DiscountResult struct {
	FinalPrice  decimal.NullDecimal `json:"final_price"`
	SavedAmount decimal.NullDecimal `json:"saved_amount"`
}

// TipInput holds the raw text of the tip & split calculator fields
type TipInput struct {
	BillAmount string `yaml:"bill_amount" toml:"bill_amount" json:"bill_amount"`
	TipPercent string `yaml:"tip_percent" toml:"tip_percent" json:"tip_percent"`
	DinerCount string `yaml:"diner_count" toml:"diner_count" json:"diner_count"`
}

// TipResult is derived from TipInput. PerPersonAmount is invalid on its own
// when the diner count is not positive.
type TipResult struct {
	TipAmount       decimal.NullDecimal `json:"tip_amount"`
	TotalAmount     decimal.NullDecimal `json:"total_amount"`
	PerPersonAmount decimal.NullDecimal `json:"per_person_amount"`
}

// ProgressInput holds the raw text of the goal tracker fields
type ProgressInput struct {
	TargetValue  string `yaml:"target_value" toml:"target_value" json:"target_value"`
	CurrentValue string `yaml:"current_value" toml:"current_value" json:"current_value"`
}

// ProgressResult is derived from ProgressInput. Every field is invalid when an
// input fails to parse or the target is zero.
type ProgressResult struct {
	CompletionPercent decimal.NullDecimal `json:"completion_percent"` // clamped to [0, 100]
	RemainingAmount   decimal.NullDecimal `json:"remaining_amount"`
	DifferencePercent decimal.NullDecimal `json:"difference_percent"` // signed, negative below target
}

// CalculatorInputs groups the input state of every calculator
type CalculatorInputs struct {
	Discount DiscountInput `yaml:"discount" toml:"discount" json:"discount"`
	Tip      TipInput      `yaml:"tip" toml:"tip" json:"tip"`
	Progress ProgressInput `yaml:"progress" toml:"progress" json:"progress"`
}

// CalculatorResults groups the derived values of every calculator
type CalculatorResults struct {
	Discount DiscountResult `json:"discount"`
	Tip      TipResult      `json:"tip"`
	Progress ProgressResult `json:"progress"`
}
