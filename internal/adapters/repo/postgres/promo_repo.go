package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/chicthreads/fashionstore/internal/domain"
)

type PromoRepo struct{ db *gorm.DB }

func NewPromoRepo(db *gorm.DB) *PromoRepo { return &PromoRepo{db: db} }

// FindActive is a case-sensitive exact match; inactive rows resolve as
// ErrNotFound so they never discount.
func (r *PromoRepo) FindActive(ctx context.Context, code string) (*domain.PromoCode, error) {
	var p domain.PromoCode
	err := r.db.WithContext(ctx).First(&p, "code = ? AND is_active = ?", code, true).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PromoRepo) Save(ctx context.Context, p *domain.PromoCode) error {
	return r.db.WithContext(ctx).Save(p).Error
}
