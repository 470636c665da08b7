package calculation

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Design-Arena-Gens/agentic-6b10b7fb/internal/domain"
)

func requireValue(t *testing.T, want string, got decimal.NullDecimal, msgAndArgs ...any) {
	t.Helper()
	require.True(t, got.Valid, msgAndArgs...)
	assert.True(t, got.Decimal.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got.Decimal)
}

func TestCalculateDiscount_ShirtExample(t *testing.T) {
	res := CalculateDiscount(domain.DiscountInput{OriginalPrice: "180", DiscountPercent: "25"})
	requireValue(t, "45", res.SavedAmount)
	requireValue(t, "135", res.FinalPrice)
}

func TestCalculateDiscount_CommaDecimal(t *testing.T) {
	res := CalculateDiscount(domain.DiscountInput{OriginalPrice: "99,90", DiscountPercent: "10"})
	requireValue(t, "9.99", res.SavedAmount)
	requireValue(t, "89.91", res.FinalPrice)
}

func TestCalculateDiscount_UnparseableInputIsUndefined(t *testing.T) {
	cases := []domain.DiscountInput{
		{OriginalPrice: "", DiscountPercent: "25"},
		{OriginalPrice: "180", DiscountPercent: ""},
		{OriginalPrice: "abc", DiscountPercent: "25"},
		{OriginalPrice: "180", DiscountPercent: "25%"},
	}
	for _, in := range cases {
		res := CalculateDiscount(in)
		assert.False(t, res.FinalPrice.Valid, "input %+v", in)
		assert.False(t, res.SavedAmount.Valid, "input %+v", in)
	}
}

func TestCalculateDiscount_OutOfRangePercentPropagates(t *testing.T) {
	over := CalculateDiscount(domain.DiscountInput{OriginalPrice: "100", DiscountPercent: "150"})
	requireValue(t, "150", over.SavedAmount)
	requireValue(t, "-50", over.FinalPrice)

	negative := CalculateDiscount(domain.DiscountInput{OriginalPrice: "100", DiscountPercent: "-10"})
	requireValue(t, "-10", negative.SavedAmount)
	requireValue(t, "110", negative.FinalPrice)
}

func TestCalculateDiscount_FinalPlusSavedEqualsPrice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		price := fmt.Sprintf("%.2f", rng.Float64()*10000-1000)
		percent := fmt.Sprintf("%.3f", rng.Float64()*240-70)
		res := CalculateDiscount(domain.DiscountInput{OriginalPrice: price, DiscountPercent: percent})
		require.True(t, res.FinalPrice.Valid)
		sum := res.FinalPrice.Decimal.Add(res.SavedAmount.Decimal)
		assert.True(t, sum.Equal(decimal.RequireFromString(price)), "price=%s percent=%s sum=%s", price, percent, sum)
	}
}
