package domain

import "time"

// CartItem is a session-scoped line item. It belongs to an anonymous session
// key, not a user account, so it lives only as long as the session does.
type CartItem struct {
	ID         uint   `gorm:"primaryKey"`
	SessionKey string `gorm:"size:100;index"`
	ProductID  uint   `gorm:"index"`
	Product    Product
	Size       string `gorm:"size:10;default:M"`
	Color      string `gorm:"size:50;default:Black"`
	Quantity   int    `gorm:"default:1"`
	AddedAt    time.Time
}

func (c *CartItem) Subtotal() float64 {
	return c.Product.Price * float64(c.Quantity)
}
