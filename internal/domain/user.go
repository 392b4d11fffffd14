package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type UserStatus string

const (
	UserActive  UserStatus = "active"
	UserBlocked UserStatus = "blocked"
)

type User struct {
	ID           uint       `gorm:"primaryKey"`
	Name         string     `gorm:"size:150"`
	Email        string     `gorm:"size:140;uniqueIndex"`
	Username     string     `gorm:"size:100;uniqueIndex"`
	PasswordHash string     `gorm:"size:255"`
	Role         Role       `gorm:"type:varchar(20);default:customer"`
	Status       UserStatus `gorm:"type:varchar(20);default:active;index"`
	Avatar       string     `gorm:"size:255"`
	CreatedAt    time.Time
}
