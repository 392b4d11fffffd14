package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// ValueList is an ordered list of values (sizes, colors). It lives in the
// domain as a real slice; the comma-joined string is only a storage format.
type ValueList []string

func (v ValueList) Value() (driver.Value, error) {
	return strings.Join(v, ","), nil
}

func (v *ValueList) Scan(src any) error {
	var raw string
	switch s := src.(type) {
	case nil:
		*v = nil
		return nil
	case string:
		raw = s
	case []byte:
		raw = string(s)
	default:
		return fmt.Errorf("valuelist: cannot scan %T", src)
	}
	if strings.TrimSpace(raw) == "" {
		*v = nil
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(ValueList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	*v = out
	return nil
}

func (v ValueList) Contains(s string) bool {
	for _, e := range v {
		if strings.EqualFold(e, s) {
			return true
		}
	}
	return false
}

type Category struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"size:100"`
	Slug  string `gorm:"size:100;uniqueIndex"`
	Image string `gorm:"size:255"`
}

type ProductStatus string

const (
	ProductActive     ProductStatus = "active"
	ProductHidden     ProductStatus = "hidden"
	ProductOutOfStock ProductStatus = "out_of_stock"
)

type Product struct {
	ID            uint          `gorm:"primaryKey"`
	Name          string        `gorm:"size:200"`
	Description   string        `gorm:"type:text"`
	Price         float64       `gorm:"type:decimal(10,2)"`
	OriginalPrice *float64      `gorm:"type:decimal(10,2)"`
	CategoryID    *uint         `gorm:"index"`
	Category      *Category     `gorm:"constraint:OnDelete:SET NULL"`
	Image         string        `gorm:"size:255"`
	Image2        string        `gorm:"size:255"`
	Image3        string        `gorm:"size:255"`
	Stock         int           `gorm:"default:0"`
	Sizes         ValueList     `gorm:"type:varchar(100)"`
	Colors        ValueList     `gorm:"type:varchar(200)"`
	Rating        float64       `gorm:"type:decimal(3,1);default:4.5"`
	ReviewCount   int           `gorm:"default:0"`
	Status        ProductStatus `gorm:"type:varchar(20);default:active;index"`
	IsTrending    bool          `gorm:"default:false"`
	IsNewArrival  bool          `gorm:"default:false"`
	Badge         string        `gorm:"size:50"`
	CreatedAt     time.Time
}

// DiscountPct is the badge percentage derived from original vs current price.
func (p *Product) DiscountPct() int {
	if p.OriginalPrice == nil || *p.OriginalPrice <= p.Price {
		return 0
	}
	return int((1 - p.Price / *p.OriginalPrice) * 100)
}

type ProductFilter struct {
	CategoryID *uint
	Size       string
	Color      string
	MinPrice   *float64
	MaxPrice   *float64
	Query      string
	Sort       string
	ActiveOnly bool
	Page       int
	PageSize   int
}
