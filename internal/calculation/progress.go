package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
	pkgdecimal "github.com/Design-Arena-Gens/agentic-6b10b7fb/pkg/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// completion is clamped to [0, 100]; the difference is not
	completionFloor   = decimal.Zero
	completionCeiling = hundred
)

// CalculateProgress derives how far current is toward target.
//
//	completion = clamp(current / target * 100, 0, 100)
//	remaining  = target - current
//	difference = (current - target) / target * 100
//
// A zero target makes every value undefined.
func CalculateProgress(in domain.ProgressInput) domain.ProgressResult {
	target := pkgdecimal.ParseDecimal(in.TargetValue)
	current := pkgdecimal.ParseDecimal(in.CurrentValue)
	if !target.Valid || !current.Valid || target.Decimal.IsZero() {
		return domain.ProgressResult{}
	}

	goal, now := target.Decimal, current.Decimal
	completion := now.Mul(hundred).Div(goal)
	difference := now.Sub(goal).Mul(hundred).Div(goal)

	return domain.ProgressResult{
		CompletionPercent: valid(Clamp(completion, completionFloor, completionCeiling)),
		RemainingAmount:   pkgdecimal.NewMoneyFromDecimal(goal).Sub(pkgdecimal.NewMoneyFromDecimal(now)).Null(),
		DifferencePercent: valid(difference),
	}
}

// Clamp restricts v to the closed range [lo, hi].
func Clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Max(lo, decimal.Min(hi, v))
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
