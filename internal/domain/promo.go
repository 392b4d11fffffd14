package domain

type PromoCode struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"size:50;uniqueIndex"`
	DiscountPct int    `gorm:"default:10"`
	IsActive    bool   `gorm:"default:true"`
}
