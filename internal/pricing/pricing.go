// Package pricing computes order totals from resolved order items.
//
// Everything here is pure: the same item sequence always yields the same
// result and nothing is read from or written to a store.
package pricing

import (
	"toko/internal/models"

	"github.com/shopspring/decimal"
)

// VarietyThreshold is the distinct product count an order must exceed for the
// variety discount to apply.
const VarietyThreshold = 3

// DiscountRate is the fraction taken off the subtotal by the variety discount.
var DiscountRate = decimal.RequireFromString("0.10")

// moneyPlaces is the precision discounted totals are rounded to.
const moneyPlaces = 2

// Breakdown itemises how an order total was reached.
type Breakdown struct {
	Subtotal         decimal.Decimal
	Discount         decimal.Decimal
	Total            decimal.Decimal
	DistinctProducts int
	DiscountApplied  bool
}

// Subtotal sums the line totals of items without intermediate rounding.
func Subtotal(items []models.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal)
	}
	return sum
}

// DistinctProducts counts unique product ids among items. Quantities and
// repeated ids do not change the count.
func DistinctProducts(items []models.OrderItem) int {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		seen[item.Product.ID] = struct{}{}
	}
	return len(seen)
}

// DiscountApplies reports whether items qualify for the variety discount.
func DiscountApplies(items []models.OrderItem) bool {
	return DistinctProducts(items) > VarietyThreshold
}

// Quote prices items and reports the subtotal, discount and total.
func Quote(items []models.OrderItem) Breakdown {
	b := Breakdown{
		Subtotal:         Subtotal(items),
		DistinctProducts: DistinctProducts(items),
	}
	b.DiscountApplied = b.DistinctProducts > VarietyThreshold
	if !b.DiscountApplied {
		b.Discount = decimal.Zero
		b.Total = b.Subtotal
		return b
	}
	b.Total = b.Subtotal.Mul(decimal.NewFromInt(1).Sub(DiscountRate)).Round(moneyPlaces)
	b.Discount = b.Subtotal.Sub(b.Total)
	return b
}

// ComputeTotal returns the amount payable for items.
func ComputeTotal(items []models.OrderItem) decimal.Decimal {
	return Quote(items).Total
}
