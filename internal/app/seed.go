package app

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chicthreads/fashionstore/internal/domain"
)

// seed is idempotent: rows are matched on their natural keys and only
// created when missing.
func seed(db *gorm.DB) error {
	for _, p := range []domain.PromoCode{
		{Code: "CHIC10", DiscountPct: 10, IsActive: true},
		{Code: "LUXE20", DiscountPct: 20, IsActive: true},
		{Code: "SAVE15", DiscountPct: 15, IsActive: true},
	} {
		if err := db.Where("code = ?", p.Code).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}

	cats := map[string]*domain.Category{}
	for _, c := range []domain.Category{
		{Name: "Women", Slug: "women"},
		{Name: "Men", Slug: "men"},
		{Name: "Kids", Slug: "kids"},
		{Name: "Accessories", Slug: "accessories"},
	} {
		row := c
		if err := db.Where("slug = ?", c.Slug).FirstOrCreate(&row).Error; err != nil {
			return err
		}
		cats[row.Slug] = &row
	}

	type demoUser struct{ name, email, username, password string }
	for _, u := range []demoUser{
		{"Sarah Jenkins", "sarah.j@email.com", "sarah_j", "sarah123"},
		{"Michael Chen", "m.chen@email.com", "michael_c", "michael123"},
		{"Elena Rodriguez", "elena.rod@email.com", "elena_r", "elena123"},
		{"John Smith", "jsmith@email.com", "john_smith", "john123"},
		{"Emma Wilson", "emma.w@email.com", "emma_w", "emma123"},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		row := domain.User{
			Name: u.name, Email: u.email, Username: u.username,
			PasswordHash: string(hash),
			Role:         domain.RoleCustomer, Status: domain.UserActive,
		}
		if err := db.Where("email = ?", u.email).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	// one blocked account for the back-office demo
	if err := db.Model(&domain.User{}).
		Where("email = ?", "elena.rod@email.com").
		Update("status", domain.UserBlocked).Error; err != nil {
		return err
	}

	orig := func(v float64) *float64 { return &v }
	for _, p := range []domain.Product{
		{Name: "Silk Wrap Dress", Description: "Flowing silk wrap dress with a tie waist.", Price: 129.00, OriginalPrice: orig(185.00), CategoryID: &cats["women"].ID, Stock: 24, Sizes: domain.ValueList{"XS", "S", "M", "L"}, Colors: domain.ValueList{"Rose", "Black"}, Rating: 4.7, ReviewCount: 112, IsTrending: true, Badge: "SALE-30%"},
		{Name: "Linen Blazer", Description: "Relaxed-fit linen blazer for warm days.", Price: 149.00, CategoryID: &cats["women"].ID, Stock: 18, Sizes: domain.ValueList{"S", "M", "L", "XL"}, Colors: domain.ValueList{"Beige", "White"}, Rating: 4.5, ReviewCount: 64, IsNewArrival: true},
		{Name: "Oxford Shirt", Description: "Classic button-down oxford in crisp cotton.", Price: 59.00, CategoryID: &cats["men"].ID, Stock: 40, Sizes: domain.ValueList{"S", "M", "L", "XL", "XXL"}, Colors: domain.ValueList{"White", "Blue"}, Rating: 4.4, ReviewCount: 89, IsTrending: true},
		{Name: "Selvedge Denim", Description: "Raw selvedge denim with a tapered leg.", Price: 119.00, CategoryID: &cats["men"].ID, Stock: 22, Sizes: domain.ValueList{"S", "M", "L", "XL"}, Colors: domain.ValueList{"Indigo"}, Rating: 4.8, ReviewCount: 203, IsNewArrival: true},
		{Name: "Puffer Jacket Mini", Description: "Lightweight warm puffer for kids.", Price: 79.00, CategoryID: &cats["kids"].ID, Stock: 15, Sizes: domain.ValueList{"XS", "S", "M"}, Colors: domain.ValueList{"Red", "Navy"}, Rating: 4.6, ReviewCount: 37},
		{Name: "Leather Tote", Description: "Full-grain leather tote with brass hardware.", Price: 219.00, CategoryID: &cats["accessories"].ID, Stock: 9, Sizes: domain.ValueList{"M"}, Colors: domain.ValueList{"Tan", "Black"}, Rating: 4.9, ReviewCount: 154, IsTrending: true, Badge: "POPULAR"},
		{Name: "Silk Scarf", Description: "Printed silk twill scarf, hand-rolled edges.", Price: 45.00, CategoryID: &cats["accessories"].ID, Stock: 60, Sizes: domain.ValueList{"M"}, Colors: domain.ValueList{"Pink", "Green"}, Rating: 4.3, ReviewCount: 28, IsNewArrival: true},
	} {
		row := p
		row.Status = domain.ProductActive
		if err := db.Where("name = ?", p.Name).FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	log.Info().Msg("seed data in place")
	return nil
}
