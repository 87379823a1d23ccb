package pricing_test

import (
	"math/rand"
	"testing"

	"toko/internal/models"
	"toko/internal/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(id, price string, qty int) models.OrderItem {
	return models.NewOrderItem(models.Product{ID: id, Name: id, Price: decimal.RequireFromString(price)}, qty)
}

func TestComputeTotal_ThreeDistinctProducts_NoDiscount(t *testing.T) {
	items := []models.OrderItem{
		item("p1", "10.00", 1),
		item("p2", "20.00", 1),
		item("p3", "30.00", 1),
	}

	total := pricing.ComputeTotal(items)

	assert.True(t, decimal.RequireFromString("60.00").Equal(total), "got %s", total)
	assert.False(t, pricing.DiscountApplies(items))
}

func TestComputeTotal_FourDistinctProducts_AppliesDiscount(t *testing.T) {
	items := []models.OrderItem{
		item("p1", "10.00", 1),
		item("p2", "10.00", 1),
		item("p3", "10.00", 1),
		item("p4", "10.00", 1),
	}

	quote := pricing.Quote(items)

	assert.True(t, decimal.RequireFromString("40.00").Equal(quote.Subtotal))
	assert.True(t, decimal.RequireFromString("4.00").Equal(quote.Discount))
	assert.True(t, decimal.RequireFromString("36.00").Equal(quote.Total))
	assert.Equal(t, 4, quote.DistinctProducts)
	assert.True(t, quote.DiscountApplied)
}

func TestComputeTotal_SingleProductLargeQuantity_NoDiscount(t *testing.T) {
	items := []models.OrderItem{item("p1", "10.00", 10)}

	total := pricing.ComputeTotal(items)

	assert.True(t, decimal.RequireFromString("100.00").Equal(total), "got %s", total)
}

func TestComputeTotal_EmptyItems(t *testing.T) {
	quote := pricing.Quote(nil)

	assert.True(t, quote.Total.IsZero())
	assert.Equal(t, 0, quote.DistinctProducts)
	assert.False(t, quote.DiscountApplied)
}

func TestComputeTotal_UndiscountedSubtotalIsNotRounded(t *testing.T) {
	items := []models.OrderItem{
		item("p1", "0.333", 1),
		item("p2", "0.001", 2),
	}

	total := pricing.ComputeTotal(items)

	assert.True(t, decimal.RequireFromString("0.335").Equal(total), "got %s", total)
}

func TestComputeTotal_DiscountRoundsToCents(t *testing.T) {
	// 33.35 * 0.9 = 30.015 rounds half up to 30.02
	items := []models.OrderItem{
		item("p1", "10.00", 1),
		item("p2", "10.00", 1),
		item("p3", "10.00", 1),
		item("p4", "3.35", 1),
	}

	quote := pricing.Quote(items)

	assert.Equal(t, "30.02", quote.Total.StringFixed(2))
	assert.True(t, quote.Subtotal.Sub(quote.Discount).Equal(quote.Total))
}

func TestDistinctProducts_RepeatedIdsCountOnce(t *testing.T) {
	items := []models.OrderItem{
		item("p1", "1.00", 1),
		item("p2", "1.00", 3),
		item("p1", "1.00", 2),
		item("p2", "1.00", 1),
		item("p3", "1.00", 1),
	}

	assert.Equal(t, 3, pricing.DistinctProducts(items))
	assert.False(t, pricing.DiscountApplies(items))
	assert.True(t, decimal.RequireFromString("8.00").Equal(pricing.ComputeTotal(items)))
}

func TestQuote_StableUnderReordering(t *testing.T) {
	items := []models.OrderItem{
		item("p1", "12.50", 2),
		item("p2", "3.99", 1),
		item("p3", "7.25", 4),
		item("p4", "100.00", 1),
		item("p5", "0.99", 9),
	}
	want := pricing.Quote(items)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.OrderItem(nil), items...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got := pricing.Quote(shuffled)
		assert.True(t, want.Total.Equal(got.Total))
		assert.Equal(t, want.DistinctProducts, got.DistinctProducts)
	}
}

func TestQuote_TotalIsSubtotalOrDiscountedSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
	}{
		{"one", []models.OrderItem{item("a", "19.99", 3)}},
		{"three", []models.OrderItem{item("a", "1.11", 1), item("b", "2.22", 2), item("c", "3.33", 3)}},
		{"five", []models.OrderItem{item("a", "1.11", 1), item("b", "2.22", 2), item("c", "3.33", 3), item("d", "4.44", 4), item("e", "5.55", 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := pricing.Quote(tt.items)
			discounted := quote.Subtotal.Mul(decimal.RequireFromString("0.90")).Round(2)

			if quote.DiscountApplied {
				assert.True(t, discounted.Equal(quote.Total))
			} else {
				assert.True(t, quote.Subtotal.Equal(quote.Total))
			}
		})
	}
}
