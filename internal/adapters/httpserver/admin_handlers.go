package httpserver

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"github.com/chicthreads/fashionstore/internal/domain"
)

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request, _ *Session) {
	d, err := s.admin.Dashboard(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type productInput struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice *float64 `json:"original_price"`
	CategoryID    *uint    `json:"category_id"`
	Stock         int      `json:"stock"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Status        string   `json:"status"`
	IsTrending    bool     `json:"is_trending"`
	IsNewArrival  bool     `json:"is_new_arrival"`
	Badge         string   `json:"badge"`
}

func (in *productInput) apply(p *domain.Product) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.OriginalPrice = in.OriginalPrice
	p.CategoryID = in.CategoryID
	p.Stock = in.Stock
	p.Sizes = domain.ValueList(in.Sizes)
	p.Colors = domain.ValueList(in.Colors)
	p.Status = domain.ProductStatus(in.Status)
	p.IsTrending = in.IsTrending
	p.IsNewArrival = in.IsNewArrival
	p.Badge = in.Badge
}

func (s *Server) handleAdminProducts(w http.ResponseWriter, r *http.Request, sess *Session) {
	switch r.Method {
	case http.MethodGet:
		f := parseProductFilter(r)
		list, total, err := s.catalog.AdminList(r.Context(), f)
		if err != nil {
			s.fail(w, err)
			return
		}
		stats, err := s.admin.ProductStats(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"products": list, "total": total, "stats": stats})
	case http.MethodPost:
		var in productInput
		if err := readJSON(r, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
			return
		}
		if err := validate.Struct(in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		var p domain.Product
		in.apply(&p)
		if err := s.admin.SaveProduct(r.Context(), &p); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, p)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAdminProductByID(w http.ResponseWriter, r *http.Request, sess *Session) {
	id, action, err := pathIDAction(r.URL.Path, "/api/admin/products/")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch {
	case action == "" && r.Method == http.MethodGet:
		p, err := s.catalog.Products.FindByID(r.Context(), id)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case action == "" && r.Method == http.MethodPost:
		p, err := s.catalog.Products.FindByID(r.Context(), id)
		if err != nil {
			s.fail(w, err)
			return
		}
		var in productInput
		if err := readJSON(r, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
			return
		}
		if err := validate.Struct(in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		in.apply(p)
		if err := s.admin.SaveProduct(r.Context(), p); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	case action == "delete" && r.Method == http.MethodPost:
		if err := s.admin.DeleteProduct(r.Context(), id); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted."})
	case action == "image" && r.Method == http.MethodPost:
		s.handleProductImage(w, r, id)
	default:
		methodNotAllowed(w)
	}
}

// handleProductImage stores the upload and records its path; bytes are never
// inspected beyond the multipart boundary.
func (s *Server) handleProductImage(w http.ResponseWriter, r *http.Request, id uint) {
	p, err := s.catalog.Products.FindByID(r.Context(), id)
	if err != nil {
		s.fail(w, err)
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad upload"})
		return
	}
	file, hdr, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image field missing"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		s.fail(w, err)
		return
	}
	path, err := s.storage.Save(hdr.Filename, data)
	if err != nil {
		log.Error().Err(err).Msg("image store")
		s.fail(w, err)
		return
	}
	p.Image = path
	if err := s.admin.SaveProduct(r.Context(), p); err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image": path})
}

func (s *Server) handleAdminOrders(w http.ResponseWriter, r *http.Request, _ *Session) {
	status := domain.OrderStatus(r.URL.Query().Get("status"))
	orders, stats, err := s.admin.ListOrders(r.Context(), status)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders, "stats": stats})
}

func (s *Server) handleAdminOrderByID(w http.ResponseWriter, r *http.Request, _ *Session) {
	id, action, err := pathIDAction(r.URL.Path, "/api/admin/orders/")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch {
	case action == "status" && r.Method == http.MethodPost:
		var in struct {
			Status string `json:"status"`
		}
		if err := readJSON(r, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
			return
		}
		o, err := s.admin.SetOrderStatus(r.Context(), id, domain.OrderStatus(in.Status))
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": fmt.Sprintf("Order #%s updated to %s.", o.OrderID, o.Status),
			"order":   o,
		})
	case action == "delete" && r.Method == http.MethodPost:
		if err := s.admin.DeleteOrder(r.Context(), id); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted."})
	default:
		methodNotAllowed(w)
	}
}

// handleAdminOrderExport streams the order book as a spreadsheet.
func (s *Server) handleAdminOrderExport(w http.ResponseWriter, r *http.Request, _ *Session) {
	orders, err := s.admin.Orders.List(r.Context(), domain.OrderFilter{})
	if err != nil {
		s.fail(w, err)
		return
	}
	f := excelize.NewFile()
	const sheet = "Orders"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		s.fail(w, err)
		return
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Order ID", "Customer", "Email", "Status", "Payment", "Subtotal", "Shipping", "Tax", "Discount", "Total", "Placed"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for row, o := range orders {
		values := []any{
			o.OrderID, o.CustomerName, o.CustomerEmail, string(o.Status), string(o.PaymentMethod),
			o.Subtotal, o.ShippingCost, o.Tax, o.Discount, o.Total,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Error().Err(err).Msg("order export")
	}
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request, _ *Session) {
	list, err := s.admin.ListUsers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleAdminUserByID(w http.ResponseWriter, r *http.Request, _ *Session) {
	id, action, err := pathIDAction(r.URL.Path, "/api/admin/users/")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch {
	case action == "toggle" && r.Method == http.MethodPost:
		u, err := s.admin.ToggleUser(r.Context(), id)
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": fmt.Sprintf("User %s is now %s.", u.Name, u.Status),
			"user":    u,
		})
	case action == "delete" && r.Method == http.MethodPost:
		if err := s.admin.DeleteUser(r.Context(), id); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted."})
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAdminCategories(w http.ResponseWriter, r *http.Request, _ *Session) {
	switch r.Method {
	case http.MethodGet:
		cats, err := s.catalog.Categories.List(r.Context())
		if err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"categories": cats})
	case http.MethodPost:
		var in struct {
			Name string `json:"name" validate:"required"`
			Slug string `json:"slug" validate:"required"`
		}
		if err := readJSON(r, &in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
			return
		}
		if err := validate.Struct(in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		c := &domain.Category{Name: in.Name, Slug: strings.ToLower(in.Slug)}
		if err := s.admin.SaveCategory(r.Context(), c); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, c)
	default:
		methodNotAllowed(w)
	}
}

func (s *Server) handleAdminCategoryByID(w http.ResponseWriter, r *http.Request, _ *Session) {
	id, action, err := pathIDAction(r.URL.Path, "/api/admin/categories/")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if action == "delete" && r.Method == http.MethodPost {
		if err := s.admin.DeleteCategory(r.Context(), id); err != nil {
			s.fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted."})
		return
	}
	methodNotAllowed(w)
}

func pathIDAction(path, prefix string) (uint, string, error) {
	rest := strings.TrimPrefix(path, prefix)
	parts := strings.SplitN(rest, "/", 2)
	id64, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, "", err
	}
	action := ""
	if len(parts) == 2 {
		action = strings.Trim(parts[1], "/")
	}
	return uint(id64), action, nil
}
