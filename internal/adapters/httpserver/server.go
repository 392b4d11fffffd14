package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"golang.org/x/oauth2"

	"github.com/chicthreads/fashionstore/internal/domain"
	"github.com/chicthreads/fashionstore/internal/usecase"
)

type Server struct {
	mux      *http.ServeMux
	catalog  *usecase.CatalogUC
	cart     *usecase.CartUC
	checkout *usecase.CheckoutUC
	auth     *usecase.AuthUC
	admin    *usecase.AdminUC
	storage  domain.FileStorage
	oauthCfg *oauth2.Config

	sessionKey []byte
	storageDir string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Options struct {
	Catalog    *usecase.CatalogUC
	Cart       *usecase.CartUC
	Checkout   *usecase.CheckoutUC
	Auth       *usecase.AuthUC
	Admin      *usecase.AdminUC
	Storage    domain.FileStorage
	OAuth      *oauth2.Config
	SessionKey string
	StorageDir string
}

func New(o Options) http.Handler {
	s := &Server{
		mux:        http.NewServeMux(),
		catalog:    o.Catalog,
		cart:       o.Cart,
		checkout:   o.Checkout,
		auth:       o.Auth,
		admin:      o.Admin,
		storage:    o.Storage,
		oauthCfg:   o.OAuth,
		sessionKey: []byte(o.SessionKey),
		storageDir: o.StorageDir,
	}
	s.routes()
	return Chain(s.mux,
		RequestID,
		Recovery,
		Logging,
	)
}

func (s *Server) routes() {
	s.mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.storageDir))))

	s.mux.HandleFunc("/api/register", s.handleRegister)
	s.mux.HandleFunc("/api/login", s.handleLogin)
	s.mux.HandleFunc("/api/logout", s.handleLogout)
	s.mux.HandleFunc("/auth/google/login", s.handleGoogleLogin)
	s.mux.HandleFunc("/auth/google/callback", s.handleGoogleCallback)

	s.mux.HandleFunc("/api/home", s.customer(s.handleHome))
	s.mux.HandleFunc("/api/shop", s.customer(s.handleShop))
	s.mux.HandleFunc("/api/products/", s.customer(s.handleProduct))

	s.mux.HandleFunc("/api/cart", s.customer(s.handleCart))
	s.mux.HandleFunc("/api/cart/add", s.customer(s.handleCartAdd))
	s.mux.HandleFunc("/api/cart/update", s.customer(s.handleCartUpdate))
	s.mux.HandleFunc("/api/cart/remove", s.customer(s.handleCartRemove))
	s.mux.HandleFunc("/api/promo/apply", s.customer(s.handlePromoApply))
	s.mux.HandleFunc("/api/checkout", s.customer(s.handleCheckout))
	s.mux.HandleFunc("/api/orders", s.customer(s.handleOrders))
	s.mux.HandleFunc("/api/orders/latest", s.customer(s.handleOrderLatest))

	s.mux.HandleFunc("/api/admin/dashboard", s.adminOnly(s.handleAdminDashboard))
	s.mux.HandleFunc("/api/admin/products", s.adminOnly(s.handleAdminProducts))
	s.mux.HandleFunc("/api/admin/products/", s.adminOnly(s.handleAdminProductByID))
	s.mux.HandleFunc("/api/admin/orders", s.adminOnly(s.handleAdminOrders))
	s.mux.HandleFunc("/api/admin/orders/export", s.adminOnly(s.handleAdminOrderExport))
	s.mux.HandleFunc("/api/admin/orders/", s.adminOnly(s.handleAdminOrderByID))
	s.mux.HandleFunc("/api/admin/users", s.adminOnly(s.handleAdminUsers))
	s.mux.HandleFunc("/api/admin/users/", s.adminOnly(s.handleAdminUserByID))
	s.mux.HandleFunc("/api/admin/categories", s.adminOnly(s.handleAdminCategories))
	s.mux.HandleFunc("/api/admin/categories/", s.adminOnly(s.handleAdminCategoryByID))
}

// customer wraps a handler behind the login requirement and hands it the
// request-scoped session explicitly instead of ambient state.
func (s *Server) customer(h func(http.ResponseWriter, *http.Request, *Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.readSession(r)
		if sess == nil || (sess.UserID == 0 && sess.Role != string(domain.RoleAdmin)) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "login required"})
			return
		}
		h(w, r, sess)
	}
}

func (s *Server) adminOnly(h func(http.ResponseWriter, *http.Request, *Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := s.readSession(r)
		if sess == nil || sess.Role != string(domain.RoleAdmin) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "admin only"})
			return
		}
		h(w, r, sess)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// fail maps domain errors to user-facing responses.
func (s *Server) fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email already registered."})
	case errors.Is(err, domain.ErrUsernameTaken):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Username already taken."})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid username or password."})
	case errors.Is(err, domain.ErrAccountBlocked):
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Your account has been blocked. Contact support."})
	case errors.Is(err, domain.ErrInvalidPromo):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid or expired promo code."})
	case errors.Is(err, domain.ErrEmptyCart):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Your cart is empty."})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}
