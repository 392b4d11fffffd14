package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chicthreads/fashionstore/internal/domain"
	"github.com/chicthreads/fashionstore/internal/usecase"
)

const testKey = "test-key"

// stubPromoRepo embeds the interface and overrides only what the route under
// test reaches; any other call panics.
type stubPromoRepo struct{ domain.PromoRepo }

func (stubPromoRepo) FindActive(_ context.Context, code string) (*domain.PromoCode, error) {
	if code == "CHIC10" {
		return &domain.PromoCode{Code: "CHIC10", DiscountPct: 10, IsActive: true}, nil
	}
	return nil, domain.ErrNotFound
}

func newTestHandler() http.Handler {
	return New(Options{
		Cart:       &usecase.CartUC{Promos: stubPromoRepo{}},
		Auth:       &usecase.AuthUC{Bootstrap: usecase.BootstrapAdmin{Username: "admin", Password: "admin"}},
		SessionKey: testKey,
	})
}

func cookieFor(t *testing.T, sess *Session) *http.Cookie {
	t.Helper()
	s := &Server{sessionKey: []byte(testKey)}
	rec := httptest.NewRecorder()
	s.writeSession(rec, sess)
	return sessionCookieFrom(t, rec)
}

func TestCustomerRoutesRequireLogin(t *testing.T) {
	h := newTestHandler()

	for _, path := range []string{"/api/cart", "/api/orders", "/api/home"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	// an anonymous session cookie is not enough either
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	r.AddCookie(cookieFor(t, &Session{SID: "sid-anon"}))
	h.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminRoutesRejectCustomers(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	r.AddCookie(cookieFor(t, &Session{SID: "sid-1", UserID: 7, Role: string(domain.RoleCustomer)}))
	h.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestBootstrapLoginIssuesAdminSession(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"admin"}`))
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)

	c := sessionCookieFrom(t, rec)
	s := &Server{sessionKey: []byte(testKey)}
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(c)
	sess := s.readSession(r2)
	require.NotNil(t, sess)
	assert.Equal(t, string(domain.RoleAdmin), sess.Role)
	assert.NotEmpty(t, sess.SID)
}

func TestLoginKeepsAnonymousSID(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"username":"admin","password":"admin"}`))
	r.AddCookie(cookieFor(t, &Session{SID: "sid-anon"}))
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)

	s := &Server{sessionKey: []byte(testKey)}
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(sessionCookieFrom(t, rec))
	sess := s.readSession(r2)
	require.NotNil(t, sess)
	assert.Equal(t, "sid-anon", sess.SID, "the cart key must survive login")
}

func TestPromoApplyWritesSessionCookie(t *testing.T) {
	h := newTestHandler()
	auth := cookieFor(t, &Session{SID: "sid-1", UserID: 7, Role: string(domain.RoleCustomer)})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/promo/apply",
		strings.NewReader(`{"promo_code":"chic10"}`))
	r.AddCookie(auth)
	h.ServeHTTP(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Message     string `json:"message"`
		PromoCode   string `json:"promo_code"`
		DiscountPct int    `json:"discount_pct"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Promo code applied! 10% discount.", body.Message)
	assert.Equal(t, "CHIC10", body.PromoCode)

	s := &Server{sessionKey: []byte(testKey)}
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(sessionCookieFrom(t, rec))
	sess := s.readSession(r2)
	require.NotNil(t, sess)
	assert.Equal(t, "CHIC10", sess.Promo)
}

func TestPromoApplyRejectsUnknownCode(t *testing.T) {
	h := newTestHandler()
	auth := cookieFor(t, &Session{SID: "sid-1", UserID: 7, Role: string(domain.RoleCustomer)})

	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/promo/apply",
		strings.NewReader(`{"promo_code":"NOPE"}`))
	r.AddCookie(auth)
	h.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired promo code.")
}

func TestLoginRejectsGet(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/login", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestLogoutExpiresSession(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/logout", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	c := sessionCookieFrom(t, rec)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/logout", nil))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
