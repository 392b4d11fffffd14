package domain

import "context"

type UserRepo interface {
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	ListCustomers(ctx context.Context, query string) ([]User, error)
	CountCustomers(ctx context.Context, status UserStatus) (int64, error)
}

type CategoryRepo interface {
	List(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
	Save(ctx context.Context, c *Category) error
	// Delete removes the category and nulls the reference on its products.
	Delete(ctx context.Context, id uint) error
}

type ProductRepo interface {
	List(ctx context.Context, f ProductFilter) ([]Product, int64, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	Related(ctx context.Context, p *Product, limit int) ([]Product, error)
	Trending(ctx context.Context, limit int) ([]Product, error)
	NewArrivals(ctx context.Context, limit int) ([]Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status ProductStatus) (int64, error)
	AvgPrice(ctx context.Context) (float64, error)
}

type CartRepo interface {
	List(ctx context.Context, sessionKey string) ([]CartItem, error)
	Find(ctx context.Context, id uint, sessionKey string) (*CartItem, error)
	// Upsert increments quantity when a row with the same
	// (session, product, size, color) key already exists.
	Upsert(ctx context.Context, item *CartItem) error
	Save(ctx context.Context, item *CartItem) error
	Remove(ctx context.Context, id uint, sessionKey string) error
	Clear(ctx context.Context, sessionKey string) error
	Count(ctx context.Context, sessionKey string) (int64, error)
}

type PromoRepo interface {
	// FindActive resolves a code to an active promo; inactive rows are
	// ErrNotFound for discounting purposes even though they exist.
	FindActive(ctx context.Context, code string) (*PromoCode, error)
	Save(ctx context.Context, p *PromoCode) error
}

type OrderRepo interface {
	// Place persists the order with its item snapshots and clears the
	// session's cart rows in a single transaction.
	Place(ctx context.Context, o *Order, sessionKey string) error
	OrderIDExists(ctx context.Context, orderID string) (bool, error)
	FindByID(ctx context.Context, id uint) (*Order, error)
	ListByUser(ctx context.Context, userID uint) ([]Order, error)
	LatestByUser(ctx context.Context, userID uint) (*Order, error)
	List(ctx context.Context, f OrderFilter) ([]Order, error)
	UpdateStatus(ctx context.Context, id uint, status OrderStatus) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*OrderStats, error)
	// Revenue sums totals over shipped and delivered orders.
	Revenue(ctx context.Context) (float64, error)
	MonthlyRevenue(ctx context.Context) ([]MonthRevenue, error)
}

// FileStorage stores uploaded images and returns a serving path. The core
// never inspects image bytes.
type FileStorage interface {
	Save(name string, data []byte) (string, error)
	Remove(path string) error
}
