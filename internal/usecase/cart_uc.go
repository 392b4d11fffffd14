package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/chicthreads/fashionstore/internal/domain"
)

type CartUC struct {
	Carts    domain.CartRepo
	Products domain.ProductRepo
	Promos   domain.PromoRepo
}

type CartView struct {
	Items  []domain.CartItem `json:"items"`
	Promo  string            `json:"promo,omitempty"`
	Totals Totals            `json:"totals"`
}

// View loads the session's cart and prices it with the promo code held in the
// session bag. An unknown or deactivated code is silently ignored here; only
// the apply step reports it.
func (uc *CartUC) View(ctx context.Context, sessionKey, promoCode string) (*CartView, error) {
	items, err := uc.Carts.List(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	var promo *domain.PromoCode
	if promoCode != "" {
		if p, err := uc.Promos.FindActive(ctx, promoCode); err == nil {
			promo = p
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return &CartView{Items: items, Promo: promoCode, Totals: ComputeTotals(items, promo)}, nil
}

func (uc *CartUC) Add(ctx context.Context, sessionKey string, productID uint, size, color string) (*domain.Product, error) {
	p, err := uc.Products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if size == "" {
		size = "M"
	}
	if color == "" {
		color = "Black"
	}
	item := &domain.CartItem{
		SessionKey: sessionKey,
		ProductID:  p.ID,
		Size:       size,
		Color:      color,
		Quantity:   1,
		AddedAt:    time.Now(),
	}
	return p, uc.Carts.Upsert(ctx, item)
}

// UpdateQty sets the line quantity; anything below 1 deletes the line.
func (uc *CartUC) UpdateQty(ctx context.Context, sessionKey string, itemID uint, qty int) error {
	item, err := uc.Carts.Find(ctx, itemID, sessionKey)
	if err != nil {
		return err
	}
	if qty < 1 {
		return uc.Carts.Remove(ctx, item.ID, sessionKey)
	}
	item.Quantity = qty
	return uc.Carts.Save(ctx, item)
}

func (uc *CartUC) Remove(ctx context.Context, sessionKey string, itemID uint) error {
	item, err := uc.Carts.Find(ctx, itemID, sessionKey)
	if err != nil {
		return err
	}
	return uc.Carts.Remove(ctx, item.ID, sessionKey)
}

func (uc *CartUC) Count(ctx context.Context, sessionKey string) (int64, error) {
	return uc.Carts.Count(ctx, sessionKey)
}

// ApplyPromo validates a code for the session. The lookup is exact-match
// against the stored code, so input is uppercased first.
func (uc *CartUC) ApplyPromo(ctx context.Context, code string) (*domain.PromoCode, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.ErrInvalidPromo
	}
	p, err := uc.Promos.FindActive(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidPromo
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}
