package calculation

import (
	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
	pkgdecimal "github.com/Design-Arena-Gens/agentic-6b10b7fb/pkg/decimal"
)

// CalculateDiscount derives the final price and the amount saved.
//
//	saved = price * percent / 100
//	final = price - saved
//
// Percentages below 0 or above 100 are not rejected; they flow through the
// arithmetic (a negative discount raises the price).
func CalculateDiscount(in domain.DiscountInput) domain.DiscountResult {
	price := pkgdecimal.ParseDecimal(in.OriginalPrice)
	percent := pkgdecimal.ParseDecimal(in.DiscountPercent)
	if !price.Valid || !percent.Valid {
		return domain.DiscountResult{}
	}

	base := pkgdecimal.NewMoneyFromDecimal(price.Decimal)
	saved := base.Percent(percent.Decimal)
	return domain.DiscountResult{
		FinalPrice:  base.Sub(saved).Null(),
		SavedAmount: saved.Null(),
	}
}
