package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/chicthreads/fashionstore/internal/domain"
)

// orderIDAttempts bounds the collision retry loop. The keyspace is only 1e6
// ids, so running out of attempts means the space is effectively full and the
// deployment needs a wider id format, not more retries.
const orderIDAttempts = 30

type CheckoutUC struct {
	Carts  domain.CartRepo
	Promos domain.PromoRepo
	Orders domain.OrderRepo
	Users  domain.UserRepo

	// rng is swappable for tests; defaults to math/rand global.
	rng func(n int) int
}

type CheckoutInput struct {
	FullName      string `json:"full_name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	City          string `json:"city" validate:"required"`
	Pincode       string `json:"pincode" validate:"required"`
	PaymentMethod string `json:"payment_method"`
}

// Place runs the checkout: non-empty cart, totals from the live cart plus the
// session promo, a fresh order id, then order + snapshots + cart clear as one
// transaction. The caller drops the promo code from the session afterwards.
//
// Two truly concurrent submissions from one session are not mutually
// excluded; the second only fails if it reads the cart after the first
// transaction committed the clear.
func (uc *CheckoutUC) Place(ctx context.Context, sessionKey string, userID uint, promoCode string, in CheckoutInput) (*domain.Order, error) {
	items, err := uc.Carts.List(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	var promo *domain.PromoCode
	if promoCode != "" {
		if p, err := uc.Promos.FindActive(ctx, promoCode); err == nil {
			promo = p
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	totals := ComputeTotals(items, promo)

	orderID, err := uc.newOrderID(ctx)
	if err != nil {
		return nil, err
	}

	user, err := uc.Users.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	payment := domain.PaymentMethod(in.PaymentMethod)
	switch payment {
	case domain.PayCard, domain.PayUPI, domain.PayCOD:
	default:
		payment = domain.PayCard
	}

	order := &domain.Order{
		OrderID:         orderID,
		CustomerName:    in.FullName,
		ShippingAddress: in.Address,
		City:            in.City,
		Pincode:         in.Pincode,
		PaymentMethod:   payment,
		Subtotal:        totals.Subtotal,
		ShippingCost:    totals.Shipping,
		Tax:             totals.Tax,
		PromoCode:       promoCode,
		Discount:        totals.Discount,
		Total:           totals.Total,
		Status:          domain.OrderPending,
	}
	if user != nil {
		order.UserID = &user.ID
		order.CustomerEmail = user.Email
	}
	for i := range items {
		pid := items[i].ProductID
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   &pid,
			ProductName: items[i].Product.Name,
			Size:        items[i].Size,
			Color:       items[i].Color,
			Quantity:    items[i].Quantity,
			Price:       items[i].Product.Price,
		})
	}

	if err := uc.Orders.Place(ctx, order, sessionKey); err != nil {
		return nil, err
	}
	return order, nil
}

func (uc *CheckoutUC) History(ctx context.Context, userID uint) ([]domain.Order, error) {
	return uc.Orders.ListByUser(ctx, userID)
}

func (uc *CheckoutUC) Latest(ctx context.Context, userID uint) (*domain.Order, error) {
	return uc.Orders.LatestByUser(ctx, userID)
}

// newOrderID draws "ORD-" + 6 decimal digits until the id is unused.
func (uc *CheckoutUC) newOrderID(ctx context.Context) (string, error) {
	intn := uc.rng
	if intn == nil {
		intn = rand.Intn
	}
	for i := 0; i < orderIDAttempts; i++ {
		id := fmt.Sprintf("ORD-%06d", intn(1000000))
		exists, err := uc.Orders.OrderIDExists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", domain.ErrOrderIDSpace
}
