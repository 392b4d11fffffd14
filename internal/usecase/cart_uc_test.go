package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicthreads/fashionstore/internal/domain"
)

func newCartFixture(t *testing.T) (*CartUC, *fakeCartRepo) {
	t.Helper()
	products := &fakeProductRepo{products: map[uint]*domain.Product{
		1: {ID: 1, Name: "Silk Wrap Dress", Price: 129.00, Status: domain.ProductActive},
		2: {ID: 2, Name: "Oxford Shirt", Price: 59.00, Status: domain.ProductActive},
	}}
	carts := &fakeCartRepo{products: products}
	promos := &fakePromoRepo{promos: map[string]domain.PromoCode{
		"CHIC10": {Code: "CHIC10", DiscountPct: 10, IsActive: true},
		"DEAD20": {Code: "DEAD20", DiscountPct: 20, IsActive: false},
	}}
	return &CartUC{Carts: carts, Products: products, Promos: promos}, carts
}

func TestCartAddIncrementsExistingLine(t *testing.T) {
	uc, carts := newCartFixture(t)

	_, err := uc.Add(context.Background(), "sid", 1, "M", "Rose")
	require.NoError(t, err)
	_, err = uc.Add(context.Background(), "sid", 1, "M", "Rose")
	require.NoError(t, err)
	// different size is a distinct line
	_, err = uc.Add(context.Background(), "sid", 1, "L", "Rose")
	require.NoError(t, err)

	items, err := carts.List(context.Background(), "sid")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestCartAddDefaultsSizeAndColor(t *testing.T) {
	uc, carts := newCartFixture(t)
	_, err := uc.Add(context.Background(), "sid", 2, "", "")
	require.NoError(t, err)
	items, _ := carts.List(context.Background(), "sid")
	require.Len(t, items, 1)
	assert.Equal(t, "M", items[0].Size)
	assert.Equal(t, "Black", items[0].Color)
}

func TestCartAddUnknownProduct(t *testing.T) {
	uc, _ := newCartFixture(t)
	_, err := uc.Add(context.Background(), "sid", 404, "M", "Black")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartUpdateQtyBelowOneDeletesLine(t *testing.T) {
	uc, carts := newCartFixture(t)
	_, err := uc.Add(context.Background(), "sid", 1, "M", "Rose")
	require.NoError(t, err)
	items, _ := carts.List(context.Background(), "sid")
	require.Len(t, items, 1)

	require.NoError(t, uc.UpdateQty(context.Background(), "sid", items[0].ID, 3))
	items, _ = carts.List(context.Background(), "sid")
	assert.Equal(t, 3, items[0].Quantity)

	require.NoError(t, uc.UpdateQty(context.Background(), "sid", items[0].ID, 0))
	items, _ = carts.List(context.Background(), "sid")
	assert.Empty(t, items)
}

func TestCartUpdateOtherSessionLineIsNotFound(t *testing.T) {
	uc, carts := newCartFixture(t)
	_, err := uc.Add(context.Background(), "sid-a", 1, "M", "Rose")
	require.NoError(t, err)
	items, _ := carts.List(context.Background(), "sid-a")

	err = uc.UpdateQty(context.Background(), "sid-b", items[0].ID, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartViewPricesWithSessionPromo(t *testing.T) {
	uc, _ := newCartFixture(t)
	_, err := uc.Add(context.Background(), "sid", 1, "M", "Rose")
	require.NoError(t, err)

	view, err := uc.View(context.Background(), "sid", "CHIC10")
	require.NoError(t, err)
	assert.Equal(t, 129.00, view.Totals.Subtotal)
	assert.Equal(t, 12.90, view.Totals.Discount)
	assert.Equal(t, 138.42, view.Totals.Total)

	// unknown code is silently ignored in the view
	view, err = uc.View(context.Background(), "sid", "NOPE")
	require.NoError(t, err)
	assert.Zero(t, view.Totals.Discount)
	assert.Equal(t, 151.32, view.Totals.Total)
}

func TestApplyPromo(t *testing.T) {
	uc, _ := newCartFixture(t)

	p, err := uc.ApplyPromo(context.Background(), "  chic10 ")
	require.NoError(t, err)
	assert.Equal(t, "CHIC10", p.Code, "input is uppercased before lookup")
	assert.Equal(t, 10, p.DiscountPct)

	_, err = uc.ApplyPromo(context.Background(), "DEAD20")
	assert.ErrorIs(t, err, domain.ErrInvalidPromo, "inactive code resolves as invalid")

	_, err = uc.ApplyPromo(context.Background(), "UNKNOWN")
	assert.ErrorIs(t, err, domain.ErrInvalidPromo)

	_, err = uc.ApplyPromo(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidPromo)
}
