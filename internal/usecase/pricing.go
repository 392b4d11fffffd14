package usecase

import (
	"math"

	"github.com/chicthreads/fashionstore/internal/domain"
)

const (
	freeShippingAt = 200.0
	flatShipping   = 12.0
	taxRate        = 0.08
)

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// ComputeTotals derives the checkout figures from live cart lines and an
// optional promo. Tax applies to the subtotal only, and the discount is taken
// off the subtotal, not subtotal+tax: a 100% code still leaves shipping and
// tax payable.
func ComputeTotals(items []domain.CartItem, promo *domain.PromoCode) Totals {
	var t Totals
	for i := range items {
		t.Subtotal += items[i].Subtotal()
	}
	t.Subtotal = round2(t.Subtotal)
	if t.Subtotal < freeShippingAt {
		t.Shipping = flatShipping
	}
	t.Tax = round2(t.Subtotal * taxRate)
	if promo != nil && promo.IsActive {
		t.Discount = round2(t.Subtotal * float64(promo.DiscountPct) / 100)
	}
	t.Total = round2(t.Subtotal + t.Shipping + t.Tax - t.Discount)
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
