package usecase

import (
	"context"

	"github.com/chicthreads/fashionstore/internal/domain"
)

type CatalogUC struct {
	Products   domain.ProductRepo
	Categories domain.CategoryRepo
}

// List returns customer-facing products: active only, unknown sort keys fall
// back to newest in the repo.
func (uc *CatalogUC) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	f.ActiveOnly = true
	if f.PageSize <= 0 {
		f.PageSize = 24
	}
	return uc.Products.List(ctx, f)
}

// AdminList is unfiltered by status.
func (uc *CatalogUC) AdminList(ctx context.Context, f domain.ProductFilter) ([]domain.Product, int64, error) {
	if f.PageSize <= 0 {
		f.PageSize = 50
	}
	f.ActiveOnly = false
	return uc.Products.List(ctx, f)
}

func (uc *CatalogUC) Get(ctx context.Context, id uint) (*domain.Product, []domain.Product, error) {
	p, err := uc.Products.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if p.Status != domain.ProductActive {
		return nil, nil, domain.ErrNotFound
	}
	related, err := uc.Products.Related(ctx, p, 4)
	if err != nil {
		return nil, nil, err
	}
	return p, related, nil
}

type HomeFeed struct {
	Categories  []domain.Category `json:"categories"`
	Trending    []domain.Product  `json:"trending"`
	NewArrivals []domain.Product  `json:"new_arrivals"`
}

func (uc *CatalogUC) Home(ctx context.Context) (*HomeFeed, error) {
	cats, err := uc.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	trending, err := uc.Products.Trending(ctx, 4)
	if err != nil {
		return nil, err
	}
	arrivals, err := uc.Products.NewArrivals(ctx, 4)
	if err != nil {
		return nil, err
	}
	return &HomeFeed{Categories: cats, Trending: trending, NewArrivals: arrivals}, nil
}
