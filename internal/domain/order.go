package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PayCard PaymentMethod = "card"
	PayUPI  PaymentMethod = "upi"
	PayCOD  PaymentMethod = "cod"
)

// Order is immutable after creation except for Status and UpdatedAt. All
// money fields are frozen at checkout and never recomputed.
type Order struct {
	ID              uint          `gorm:"primaryKey"`
	OrderID         string        `gorm:"size:20;uniqueIndex"`
	UserID          *uint         `gorm:"index"`
	CustomerName    string        `gorm:"size:150"`
	CustomerEmail   string        `gorm:"size:140"`
	ShippingAddress string        `gorm:"type:text"`
	City            string        `gorm:"size:100"`
	Pincode         string        `gorm:"size:20"`
	PaymentMethod   PaymentMethod `gorm:"type:varchar(20);default:card"`
	Subtotal        float64       `gorm:"type:decimal(10,2)"`
	ShippingCost    float64       `gorm:"type:decimal(10,2);default:0"`
	Tax             float64       `gorm:"type:decimal(10,2);default:0"`
	PromoCode       string        `gorm:"size:50"`
	Discount        float64       `gorm:"type:decimal(10,2);default:0"`
	Total           float64       `gorm:"type:decimal(10,2)"`
	Status          OrderStatus   `gorm:"type:varchar(20);default:pending;index"`
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem snapshots name and price at purchase time so later product edits
// or deletions cannot corrupt order history.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey"`
	OrderID     uint    `gorm:"index"`
	ProductID   *uint   `gorm:"index"`
	ProductName string  `gorm:"size:200"`
	Size        string  `gorm:"size:10"`
	Color       string  `gorm:"size:50"`
	Quantity    int     `gorm:"default:1"`
	Price       float64 `gorm:"type:decimal(10,2)"`
}

func (it *OrderItem) Subtotal() float64 {
	return it.Price * float64(it.Quantity)
}

type OrderFilter struct {
	Status OrderStatus
	UserID *uint
}

type OrderStats struct {
	Pending      int64
	Shipped      int64
	Delivered    int64
	RevenueToday float64
}

type MonthRevenue struct {
	Month time.Time
	Total float64
}
