package usecase

import (
	"context"

	"github.com/chicthreads/fashionstore/internal/domain"
)

type AdminUC struct {
	Users      domain.UserRepo
	Products   domain.ProductRepo
	Orders     domain.OrderRepo
	Categories domain.CategoryRepo
}

type Dashboard struct {
	TotalOrders    int64                 `json:"total_orders"`
	TotalUsers     int64                 `json:"total_users"`
	TotalProducts  int64                 `json:"total_products"`
	MonthlyRevenue float64               `json:"monthly_revenue"`
	RevenueByMonth []domain.MonthRevenue `json:"revenue_by_month"`
	RecentOrders   []domain.Order        `json:"recent_orders"`
}

func (uc *AdminUC) Dashboard(ctx context.Context) (*Dashboard, error) {
	d := &Dashboard{}
	var err error
	if d.TotalOrders, err = uc.Orders.Count(ctx); err != nil {
		return nil, err
	}
	active, err := uc.Users.CountCustomers(ctx, "")
	if err != nil {
		return nil, err
	}
	d.TotalUsers = active
	if d.TotalProducts, err = uc.Products.Count(ctx); err != nil {
		return nil, err
	}
	if d.MonthlyRevenue, err = uc.Orders.Revenue(ctx); err != nil {
		return nil, err
	}
	if d.RevenueByMonth, err = uc.Orders.MonthlyRevenue(ctx); err != nil {
		return nil, err
	}
	recent, err := uc.Orders.List(ctx, domain.OrderFilter{})
	if err != nil {
		return nil, err
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	d.RecentOrders = recent
	return d, nil
}

type ProductStats struct {
	Total      int64   `json:"total"`
	OutOfStock int64   `json:"out_of_stock"`
	Revenue    float64 `json:"revenue"`
	AvgPrice   float64 `json:"avg_price"`
}

func (uc *AdminUC) ProductStats(ctx context.Context) (*ProductStats, error) {
	s := &ProductStats{}
	var err error
	if s.Total, err = uc.Products.Count(ctx); err != nil {
		return nil, err
	}
	if s.OutOfStock, err = uc.Products.CountByStatus(ctx, domain.ProductOutOfStock); err != nil {
		return nil, err
	}
	if s.Revenue, err = uc.Orders.Revenue(ctx); err != nil {
		return nil, err
	}
	if s.AvgPrice, err = uc.Products.AvgPrice(ctx); err != nil {
		return nil, err
	}
	s.AvgPrice = round2(s.AvgPrice)
	return s, nil
}

func (uc *AdminUC) SaveProduct(ctx context.Context, p *domain.Product) error {
	if len(p.Sizes) == 0 {
		p.Sizes = domain.ValueList{"S", "M", "L", "XL"}
	}
	if len(p.Colors) == 0 {
		p.Colors = domain.ValueList{"Black", "White"}
	}
	if p.Status == "" {
		p.Status = domain.ProductActive
	}
	return uc.Products.Save(ctx, p)
}

func (uc *AdminUC) DeleteProduct(ctx context.Context, id uint) error {
	if _, err := uc.Products.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.Products.Delete(ctx, id)
}

func (uc *AdminUC) ListOrders(ctx context.Context, status domain.OrderStatus) ([]domain.Order, *domain.OrderStats, error) {
	orders, err := uc.Orders.List(ctx, domain.OrderFilter{Status: status})
	if err != nil {
		return nil, nil, err
	}
	stats, err := uc.Orders.Stats(ctx)
	if err != nil {
		return nil, nil, err
	}
	return orders, stats, nil
}

// SetOrderStatus applies any status from the admin UI. Transitions are not
// validated against a predecessor; the back office may move an order to any
// state.
func (uc *AdminUC) SetOrderStatus(ctx context.Context, id uint, status domain.OrderStatus) (*domain.Order, error) {
	switch status {
	case domain.OrderPending, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled:
	default:
		return nil, domain.ErrNotFound
	}
	if err := uc.Orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return uc.Orders.FindByID(ctx, id)
}

func (uc *AdminUC) DeleteOrder(ctx context.Context, id uint) error {
	if _, err := uc.Orders.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.Orders.Delete(ctx, id)
}

type UserList struct {
	Users   []domain.User `json:"users"`
	Total   int64         `json:"total"`
	Active  int64         `json:"active"`
	Blocked int64         `json:"blocked"`
}

func (uc *AdminUC) ListUsers(ctx context.Context, query string) (*UserList, error) {
	users, err := uc.Users.ListCustomers(ctx, query)
	if err != nil {
		return nil, err
	}
	active, err := uc.Users.CountCustomers(ctx, domain.UserActive)
	if err != nil {
		return nil, err
	}
	blocked, err := uc.Users.CountCustomers(ctx, domain.UserBlocked)
	if err != nil {
		return nil, err
	}
	return &UserList{Users: users, Total: int64(len(users)), Active: active, Blocked: blocked}, nil
}

// ToggleUser flips a customer between active and blocked.
func (uc *AdminUC) ToggleUser(ctx context.Context, id uint) (*domain.User, error) {
	u, err := uc.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Status == domain.UserActive {
		u.Status = domain.UserBlocked
	} else {
		u.Status = domain.UserActive
	}
	if err := uc.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *AdminUC) DeleteUser(ctx context.Context, id uint) error {
	if _, err := uc.Users.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.Users.Delete(ctx, id)
}

func (uc *AdminUC) SaveCategory(ctx context.Context, c *domain.Category) error {
	return uc.Categories.Save(ctx, c)
}

func (uc *AdminUC) DeleteCategory(ctx context.Context, id uint) error {
	if _, err := uc.Categories.FindByID(ctx, id); err != nil {
		return err
	}
	return uc.Categories.Delete(ctx, id)
}
