package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/chicthreads/fashionstore/internal/domain"
)

type CartRepo struct{ db *gorm.DB }

func NewCartRepo(db *gorm.DB) *CartRepo { return &CartRepo{db: db} }

func (r *CartRepo) List(ctx context.Context, sessionKey string) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.WithContext(ctx).Preload("Product").
		Where("session_key = ?", sessionKey).Order("added_at asc").Find(&items).Error
	return items, err
}

func (r *CartRepo) Find(ctx context.Context, id uint, sessionKey string) (*domain.CartItem, error) {
	var it domain.CartItem
	err := r.db.WithContext(ctx).Preload("Product").
		First(&it, "id = ? AND session_key = ?", id, sessionKey).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

func (r *CartRepo) Upsert(ctx context.Context, item *domain.CartItem) error {
	var existing domain.CartItem
	err := r.db.WithContext(ctx).
		Where("session_key = ? AND product_id = ? AND size = ? AND color = ?",
			item.SessionKey, item.ProductID, item.Size, item.Color).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if item.AddedAt.IsZero() {
			item.AddedAt = time.Now()
		}
		return r.db.WithContext(ctx).Create(item).Error
	}
	if err != nil {
		return err
	}
	existing.Quantity += item.Quantity
	*item = existing
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *CartRepo) Save(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *CartRepo) Remove(ctx context.Context, id uint, sessionKey string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND session_key = ?", id, sessionKey).Delete(&domain.CartItem{}).Error
}

func (r *CartRepo) Clear(ctx context.Context, sessionKey string) error {
	return r.db.WithContext(ctx).
		Where("session_key = ?", sessionKey).Delete(&domain.CartItem{}).Error
}

func (r *CartRepo) Count(ctx context.Context, sessionKey string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.CartItem{}).
		Where("session_key = ?", sessionKey).Count(&n).Error
	return n, err
}
