package httpserver

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionCookie = "session"

// Session is the per-visitor key-value bag carried in a signed cookie. SID is
// the stable anonymous identifier that scopes the cart; the rest is the bag
// (user, role, promo code). Handlers receive it explicitly and write it back
// after mutating it.
type Session struct {
	SID    string `json:"sid"`
	UserID uint   `json:"uid,omitempty"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	Promo  string `json:"promo,omitempty"`
}

type sessionClaims struct {
	Session
	jwt.RegisteredClaims
}

func (s *Server) readSession(r *http.Request) *Session {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	var claims sessionClaims
	tok, err := jwt.ParseWithClaims(c.Value, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.sessionKey, nil
	})
	if err != nil || !tok.Valid || claims.SID == "" {
		return nil
	}
	sess := claims.Session
	return &sess
}

// ensureSession returns the request's session, minting a fresh anonymous one
// (with a stable SID) when the visitor has none.
func (s *Server) ensureSession(w http.ResponseWriter, r *http.Request) *Session {
	if sess := s.readSession(r); sess != nil {
		return sess
	}
	sess := &Session{SID: uuid.New().String()}
	s.writeSession(w, sess)
	return sess
}

func (s *Server) writeSession(w http.ResponseWriter, sess *Session) {
	claims := sessionClaims{
		Session: *sess,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.sessionKey)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    tok,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
