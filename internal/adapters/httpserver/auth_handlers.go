package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/chicthreads/fashionstore/internal/domain"
	"github.com/chicthreads/fashionstore/internal/usecase"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var in usecase.RegisterInput
	if err := readJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	if err := validate.Struct(in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	u, err := s.auth.Register(r.Context(), in)
	if err != nil {
		s.fail(w, err)
		return
	}
	sess := s.ensureSession(w, r)
	sess.UserID = u.ID
	sess.Name = u.Name
	sess.Role = string(u.Role)
	s.writeSession(w, sess)
	writeJSON(w, http.StatusCreated, map[string]any{"id": u.ID, "name": u.Name, "role": u.Role})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := readJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	u, err := s.auth.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		s.fail(w, err)
		return
	}
	// Keep the existing SID so an anonymous cart survives login.
	sess := s.ensureSession(w, r)
	sess.UserID = u.ID
	sess.Name = u.Name
	sess.Role = string(u.Role)
	s.writeSession(w, sess)
	writeJSON(w, http.StatusOK, map[string]any{"id": u.ID, "name": u.Name, "role": u.Role})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	s.clearSession(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if s.oauthCfg == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "google sign-in not configured"})
		return
	}
	state := uuid.New().String()
	http.SetCookie(w, &http.Cookie{Name: "oauth_state", Value: state, Path: "/", MaxAge: 300, HttpOnly: true})
	http.Redirect(w, r, s.oauthCfg.AuthCodeURL(state, oauth2.AccessTypeOnline), http.StatusFound)
}

func (s *Server) handleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if s.oauthCfg == nil {
		writeJSON(w, http.StatusNotImplemented, map[string]string{"error": "google sign-in not configured"})
		return
	}
	q := r.URL.Query()
	c, _ := r.Cookie("oauth_state")
	if c == nil || c.Value == "" || c.Value != q.Get("state") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "state mismatch"})
		return
	}
	tok, err := s.oauthCfg.Exchange(r.Context(), q.Get("code"))
	if err != nil {
		log.Error().Err(err).Msg("oauth exchange")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "oauth exchange failed"})
		return
	}
	resp, err := s.oauthCfg.Client(r.Context(), tok).Get("https://www.googleapis.com/oauth2/v3/userinfo")
	if err != nil || resp.StatusCode != http.StatusOK {
		log.Error().Err(err).Msg("oauth userinfo")
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userinfo failed"})
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	_ = json.Unmarshal(body, &info)
	if info.Email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "no email in profile"})
		return
	}
	u, err := s.auth.LoginGoogle(r.Context(), info.Email, info.Name)
	if err != nil {
		s.fail(w, err)
		return
	}
	sess := s.ensureSession(w, r)
	sess.UserID = u.ID
	sess.Name = u.Name
	sess.Role = string(domain.RoleCustomer)
	s.writeSession(w, sess)
	http.Redirect(w, r, "/api/home", http.StatusFound)
}
