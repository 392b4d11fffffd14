package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/chicthreads/fashionstore/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepo) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepo) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	var list []domain.Product
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if f.ActiveOnly {
		q = q.Where("status = ?", domain.ProductActive)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Size != "" {
		q = q.Where("sizes ILIKE ?", "%"+f.Size+"%")
	}
	if f.Color != "" {
		q = q.Where("colors ILIKE ?", "%"+f.Color+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	switch f.Sort {
	case "price_asc":
		q = q.Order("price asc")
	case "price_desc":
		q = q.Order("price desc")
	case "rating":
		q = q.Order("rating desc")
	default: // newest
		q = q.Order("created_at desc")
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 24
	}
	offset := (f.Page - 1) * f.PageSize
	if err := q.Offset(offset).Limit(f.PageSize).Preload("Category").Find(&list).Error; err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *ProductRepo) Related(ctx context.Context, p *domain.Product, limit int) ([]domain.Product, error) {
	var list []domain.Product
	if p.CategoryID == nil {
		return list, nil
	}
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND status = ? AND id <> ?", *p.CategoryID, domain.ProductActive, p.ID).
		Limit(limit).Find(&list).Error
	return list, err
}

func (r *ProductRepo) Trending(ctx context.Context, limit int) ([]domain.Product, error) {
	var list []domain.Product
	err := r.db.WithContext(ctx).
		Where("is_trending = ? AND status = ?", true, domain.ProductActive).
		Limit(limit).Find(&list).Error
	return list, err
}

func (r *ProductRepo) NewArrivals(ctx context.Context, limit int) ([]domain.Product, error) {
	var list []domain.Product
	err := r.db.WithContext(ctx).
		Where("is_new_arrival = ? AND status = ?", true, domain.ProductActive).
		Limit(limit).Find(&list).Error
	return list, err
}

func (r *ProductRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id).Error
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&n).Error
	return n, err
}

func (r *ProductRepo) CountByStatus(ctx context.Context, status domain.ProductStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *ProductRepo) AvgPrice(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Select("AVG(price)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
