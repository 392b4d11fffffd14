package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/chicthreads/fashionstore/internal/domain"
)

// In-memory fakes for the repo contracts. Maps and slices, no locking,
// enough behavior for the use cases under test.

type fakeUserRepo struct {
	seq   uint
	users map[uint]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*domain.User{}}
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	f.seq++
	u.ID = f.seq
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Save(_ context.Context, u *domain.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ListCustomers(_ context.Context, query string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.users {
		if u.Role != domain.RoleCustomer {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(u.Name+u.Email), strings.ToLower(query)) {
			continue
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) CountCustomers(_ context.Context, status domain.UserStatus) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.Role != domain.RoleCustomer {
			continue
		}
		if status != "" && u.Status != status {
			continue
		}
		n++
	}
	return n, nil
}

type fakeCartRepo struct {
	seq      uint
	items    []domain.CartItem
	products *fakeProductRepo
}

// List mirrors the real repo's Product preload when a product fake is wired.
func (f *fakeCartRepo) List(_ context.Context, sessionKey string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, it := range f.items {
		if it.SessionKey == sessionKey {
			if f.products != nil {
				if p, ok := f.products.products[it.ProductID]; ok {
					it.Product = *p
				}
			}
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) Find(_ context.Context, id uint, sessionKey string) (*domain.CartItem, error) {
	for _, it := range f.items {
		if it.ID == id && it.SessionKey == sessionKey {
			cp := it
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCartRepo) Upsert(_ context.Context, item *domain.CartItem) error {
	for i := range f.items {
		it := &f.items[i]
		if it.SessionKey == item.SessionKey && it.ProductID == item.ProductID &&
			it.Size == item.Size && it.Color == item.Color {
			it.Quantity += item.Quantity
			*item = *it
			return nil
		}
	}
	f.seq++
	item.ID = f.seq
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCartRepo) Save(_ context.Context, item *domain.CartItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeCartRepo) Remove(_ context.Context, id uint, sessionKey string) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].SessionKey == sessionKey {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCartRepo) Clear(_ context.Context, sessionKey string) error {
	var kept []domain.CartItem
	for _, it := range f.items {
		if it.SessionKey != sessionKey {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeCartRepo) Count(_ context.Context, sessionKey string) (int64, error) {
	var n int64
	for _, it := range f.items {
		if it.SessionKey == sessionKey {
			n++
		}
	}
	return n, nil
}

type fakePromoRepo struct {
	promos map[string]domain.PromoCode
}

func (f *fakePromoRepo) FindActive(_ context.Context, code string) (*domain.PromoCode, error) {
	p, ok := f.promos[code]
	if !ok || !p.IsActive {
		return nil, domain.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (f *fakePromoRepo) Save(_ context.Context, p *domain.PromoCode) error {
	if f.promos == nil {
		f.promos = map[string]domain.PromoCode{}
	}
	f.promos[p.Code] = *p
	return nil
}

type fakeOrderRepo struct {
	seq    uint
	orders []domain.Order
	carts  *fakeCartRepo
}

func (f *fakeOrderRepo) Place(ctx context.Context, o *domain.Order, sessionKey string) error {
	f.seq++
	o.ID = f.seq
	f.orders = append(f.orders, *o)
	if f.carts != nil {
		return f.carts.Clear(ctx, sessionKey)
	}
	return nil
}

func (f *fakeOrderRepo) OrderIDExists(_ context.Context, orderID string) (bool, error) {
	for _, o := range f.orders {
		if o.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id uint) (*domain.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID uint) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) LatestByUser(ctx context.Context, userID uint) (*domain.Order, error) {
	list, _ := f.ListByUser(ctx, userID)
	if len(list) == 0 {
		return nil, domain.ErrNotFound
	}
	cp := list[len(list)-1]
	return &cp, nil
}

func (f *fakeOrderRepo) List(_ context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.UserID != nil && (o.UserID == nil || *o.UserID != *filter.UserID) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uint, status domain.OrderStatus) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeOrderRepo) Delete(_ context.Context, id uint) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.orders)), nil
}

func (f *fakeOrderRepo) Stats(_ context.Context) (*domain.OrderStats, error) {
	s := &domain.OrderStats{}
	for _, o := range f.orders {
		switch o.Status {
		case domain.OrderPending:
			s.Pending++
		case domain.OrderShipped:
			s.Shipped++
		case domain.OrderDelivered:
			s.Delivered++
		}
	}
	return s, nil
}

func (f *fakeOrderRepo) Revenue(_ context.Context) (float64, error) {
	var rev float64
	for _, o := range f.orders {
		if o.Status == domain.OrderShipped || o.Status == domain.OrderDelivered {
			rev += o.Total
		}
	}
	return rev, nil
}

func (f *fakeOrderRepo) MonthlyRevenue(_ context.Context) ([]domain.MonthRevenue, error) {
	return nil, nil
}

type fakeProductRepo struct {
	products map[uint]*domain.Product
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProductRepo) List(_ context.Context, _ domain.ProductFilter) ([]domain.Product, int64, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) Related(_ context.Context, _ *domain.Product, _ int) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Trending(_ context.Context, _ int) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) NewArrivals(_ context.Context, _ int) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) Save(_ context.Context, p *domain.Product) error {
	if f.products == nil {
		f.products = map[uint]*domain.Product{}
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) CountByStatus(_ context.Context, status domain.ProductStatus) (int64, error) {
	var n int64
	for _, p := range f.products {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeProductRepo) AvgPrice(_ context.Context) (float64, error) {
	if len(f.products) == 0 {
		return 0, nil
	}
	var sum float64
	for _, p := range f.products {
		sum += p.Price
	}
	return sum / float64(len(f.products)), nil
}

type fakeCategoryRepo struct {
	seq  uint
	cats map[uint]*domain.Category
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range f.cats {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*domain.Category, error) {
	if c, ok := f.cats[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCategoryRepo) Save(_ context.Context, c *domain.Category) error {
	if f.cats == nil {
		f.cats = map[uint]*domain.Category{}
	}
	if c.ID == 0 {
		f.seq++
		c.ID = f.seq
	}
	cp := *c
	f.cats[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(f.cats, id)
	return nil
}
