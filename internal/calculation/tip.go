package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
	pkgdecimal "github.com/Design-Arena-Gens/agentic-6b10b7fb/pkg/decimal"
)

// CalculateTip derives the tip, the bill total and each diner's share.
// The diner count is read as a plain number, so "2,5" is undefined while a
// blank count is zero. A count of zero or less leaves only the per-person
// share undefined.
func CalculateTip(in domain.TipInput) domain.TipResult {
	bill := pkgdecimal.ParseDecimal(in.BillAmount)
	percent := pkgdecimal.ParseDecimal(in.TipPercent)
	diners := pkgdecimal.ParseCount(in.DinerCount)
	if !bill.Valid || !percent.Valid || !diners.Valid {
		return domain.TipResult{}
	}

	amount := pkgdecimal.NewMoneyFromDecimal(bill.Decimal)
	tip := amount.Percent(percent.Decimal)
	total := amount.Add(tip)

	result := domain.TipResult{
		TipAmount:   tip.Null(),
		TotalAmount: total.Null(),
	}
	if diners.Decimal.GreaterThan(decimal.Zero) {
		result.PerPersonAmount = total.Div(diners.Decimal).Null()
	}
	return result
}
