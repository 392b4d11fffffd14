package httpserver

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/chicthreads/fashionstore/internal/domain"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request, sess *Session) {
	feed, err := s.catalog.Home(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	count, _ := s.cart.Count(r.Context(), sess.SID)
	writeJSON(w, http.StatusOK, map[string]any{
		"categories":   feed.Categories,
		"trending":     feed.Trending,
		"new_arrivals": feed.NewArrivals,
		"cart_count":   count,
	})
}

func (s *Server) handleShop(w http.ResponseWriter, r *http.Request, sess *Session) {
	f := parseProductFilter(r)
	list, total, err := s.catalog.List(r.Context(), f)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products": list,
		"total":    total,
		"sort":     f.Sort,
		"q":        f.Query,
	})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request, sess *Session) {
	id, err := pathID(r.URL.Path, "/api/products/")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	p, related, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"product": p,
		"related": related,
		"sizes":   p.Sizes,
		"colors":  p.Colors,
	})
}

// parseProductFilter reads the query-string filters the shop page exposes.
func parseProductFilter(r *http.Request) domain.ProductFilter {
	qv := r.URL.Query()
	f := domain.ProductFilter{
		Size:  qv.Get("size"),
		Color: qv.Get("color"),
		Query: qv.Get("q"),
		Sort:  qv.Get("sort"),
	}
	if v := qv.Get("category"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 32); err == nil {
			cid := uint(id)
			f.CategoryID = &cid
		}
	}
	if v := qv.Get("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = &p
		}
	}
	if v := qv.Get("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = &p
		}
	}
	if page, _ := strconv.Atoi(qv.Get("page")); page > 0 {
		f.Page = page
	}
	return f
}

func pathID(path, prefix string) (uint, error) {
	raw := strings.TrimPrefix(path, prefix)
	raw = strings.SplitN(raw, "/", 2)[0]
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
