package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/chicthreads/fashionstore/internal/domain"
	"github.com/chicthreads/fashionstore/internal/usecase"
)

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request, sess *Session) {
	view, err := s.cart.View(r.Context(), sess.SID, sess.Promo)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCartAdd(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var in struct {
		ProductID uint   `json:"product_id"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := readJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	p, err := s.cart.Add(r.Context(), sess.SID, in.ProductID, in.Size, in.Color)
	if err != nil {
		s.fail(w, err)
		return
	}
	count, _ := s.cart.Count(r.Context(), sess.SID)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    fmt.Sprintf("%q added to cart!", p.Name),
		"cart_count": count,
	})
}

func (s *Server) handleCartUpdate(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var in struct {
		ItemID   uint `json:"item_id"`
		Quantity int  `json:"quantity"`
	}
	if err := readJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	if err := s.cart.UpdateQty(r.Context(), sess.SID, in.ItemID, in.Quantity); err != nil {
		s.fail(w, err)
		return
	}
	s.handleCart(w, r, sess)
}

func (s *Server) handleCartRemove(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var in struct {
		ItemID uint `json:"item_id"`
	}
	if err := readJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	if err := s.cart.Remove(r.Context(), sess.SID, in.ItemID); err != nil {
		s.fail(w, err)
		return
	}
	s.handleCart(w, r, sess)
}

func (s *Server) handlePromoApply(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var in struct {
		PromoCode string `json:"promo_code"`
	}
	if err := readJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	p, err := s.cart.ApplyPromo(r.Context(), in.PromoCode)
	if err != nil {
		s.fail(w, err)
		return
	}
	sess.Promo = p.Code
	s.writeSession(w, sess)
	writeJSON(w, http.StatusOK, map[string]any{
		"message":      fmt.Sprintf("Promo code applied! %d%% discount.", p.DiscountPct),
		"promo_code":   p.Code,
		"discount_pct": p.DiscountPct,
	})
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request, sess *Session) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}
	var in usecase.CheckoutInput
	if err := readJSON(r, &in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	if err := validate.Struct(in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	order, err := s.checkout.Place(r.Context(), sess.SID, sess.UserID, sess.Promo, in)
	if err != nil {
		if errors.Is(err, domain.ErrOrderIDSpace) {
			log.Error().Err(err).Msg("order id space exhausted, widen the identifier format")
		}
		s.fail(w, err)
		return
	}
	sess.Promo = ""
	s.writeSession(w, sess)
	writeJSON(w, http.StatusCreated, order)
}

func (s *Server) handleOrders(w http.ResponseWriter, r *http.Request, sess *Session) {
	orders, err := s.checkout.History(r.Context(), sess.UserID)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (s *Server) handleOrderLatest(w http.ResponseWriter, r *http.Request, sess *Session) {
	order, err := s.checkout.Latest(r.Context(), sess.UserID)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
