package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/chicthreads/fashionstore/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// Place commits the order, its item snapshots and the cart clear together.
func (r *OrderRepo) Place(ctx context.Context, o *domain.Order, sessionKey string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		return tx.Where("session_key = ?", sessionKey).Delete(&domain.CartItem{}).Error
	})
}

func (r *OrderRepo) OrderIDExists(ctx context.Context, orderID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("order_id = ?", orderID).Count(&n).Error
	return n > 0, err
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var list []domain.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *OrderRepo) LatestByUser(ctx context.Context, userID uint) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).Order("created_at desc").First(&o).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *OrderRepo) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	var list []domain.Order
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at desc")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	return list, q.Find(&list).Error
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint, status domain.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Order{}, "id = ?", id).Error
	})
}

func (r *OrderRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&n).Error
	return n, err
}

func (r *OrderRepo) Stats(ctx context.Context) (*domain.OrderStats, error) {
	s := &domain.OrderStats{}
	m := r.db.WithContext(ctx).Model(&domain.Order{})
	if err := m.Where("status = ?", domain.OrderPending).Count(&s.Pending).Error; err != nil {
		return nil, err
	}
	m = r.db.WithContext(ctx).Model(&domain.Order{})
	if err := m.Where("status = ?", domain.OrderShipped).Count(&s.Shipped).Error; err != nil {
		return nil, err
	}
	m = r.db.WithContext(ctx).Model(&domain.Order{})
	if err := m.Where("status = ?", domain.OrderDelivered).Count(&s.Delivered).Error; err != nil {
		return nil, err
	}
	today := time.Now().Truncate(24 * time.Hour)
	var rev *float64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("SUM(total)").Where("created_at >= ?", today).Scan(&rev).Error
	if err != nil {
		return nil, err
	}
	if rev != nil {
		s.RevenueToday = *rev
	}
	return s, nil
}

func (r *OrderRepo) Revenue(ctx context.Context) (float64, error) {
	var rev *float64
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("SUM(total)").
		Where("status IN ?", []domain.OrderStatus{domain.OrderShipped, domain.OrderDelivered}).
		Scan(&rev).Error
	if err != nil || rev == nil {
		return 0, err
	}
	return *rev, nil
}

func (r *OrderRepo) MonthlyRevenue(ctx context.Context) ([]domain.MonthRevenue, error) {
	var rows []domain.MonthRevenue
	err := r.db.WithContext(ctx).Model(&domain.Order{}).
		Select("date_trunc('month', created_at) AS month, SUM(total) AS total").
		Where("status IN ?", []domain.OrderStatus{domain.OrderShipped, domain.OrderDelivered}).
		Group("date_trunc('month', created_at)").
		Order("month asc").
		Scan(&rows).Error
	return rows, err
}
