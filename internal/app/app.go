package app

import (
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/chicthreads/fashionstore/internal/adapters/httpserver"
	"github.com/chicthreads/fashionstore/internal/adapters/repo/postgres"
	"github.com/chicthreads/fashionstore/internal/adapters/storage/localfs"
	"github.com/chicthreads/fashionstore/internal/config"
	"github.com/chicthreads/fashionstore/internal/domain"
	"github.com/chicthreads/fashionstore/internal/usecase"
)

type App struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Catalog  *usecase.CatalogUC
	Cart     *usecase.CartUC
	Checkout *usecase.CheckoutUC
	Auth     *usecase.AuthUC
	Admin    *usecase.AdminUC
	Storage  domain.FileStorage
	OAuth    *oauth2.Config
}

func New(db *gorm.DB, cfg *config.Config) (*App, error) {
	users := postgres.NewUserRepo(db)
	categories := postgres.NewCategoryRepo(db)
	products := postgres.NewProductRepo(db)
	carts := postgres.NewCartRepo(db)
	promos := postgres.NewPromoRepo(db)
	orders := postgres.NewOrderRepo(db)

	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		return nil, err
	}

	var oauthCfg *oauth2.Config
	if cfg.GoogleClientID != "" && cfg.GoogleClientSecret != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.BaseURL + "/auth/google/callback",
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	return &App{
		DB:      db,
		Cfg:     cfg,
		Catalog: &usecase.CatalogUC{Products: products, Categories: categories},
		Cart:    &usecase.CartUC{Carts: carts, Products: products, Promos: promos},
		Checkout: &usecase.CheckoutUC{
			Carts:  carts,
			Promos: promos,
			Orders: orders,
			Users:  users,
		},
		Auth: &usecase.AuthUC{
			Users: users,
			Bootstrap: usecase.BootstrapAdmin{
				Username: cfg.AdminUsername,
				Password: cfg.AdminPassword,
			},
		},
		Admin: &usecase.AdminUC{
			Users:      users,
			Products:   products,
			Orders:     orders,
			Categories: categories,
		},
		Storage: localfs.New(cfg.StorageDir),
		OAuth:   oauthCfg,
	}, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(httpserver.Options{
		Catalog:    a.Catalog,
		Cart:       a.Cart,
		Checkout:   a.Checkout,
		Auth:       a.Auth,
		Admin:      a.Admin,
		Storage:    a.Storage,
		OAuth:      a.OAuth,
		SessionKey: a.Cfg.SessionKey,
		StorageDir: a.Cfg.StorageDir,
	})
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(
		&domain.User{}, &domain.Category{}, &domain.Product{},
		&domain.CartItem{}, &domain.PromoCode{},
		&domain.Order{}, &domain.OrderItem{},
	); err != nil {
		return err
	}
	if a.Cfg.Seed {
		return seed(a.DB)
	}
	return nil
}
