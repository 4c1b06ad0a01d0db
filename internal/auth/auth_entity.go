package auth

import (
	"time"
)

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

type User struct {
	ID         uint      `gorm:"primaryKey"`
	Email      string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Password   string    `gorm:"type:varchar(200);not null"`
	Role       string    `gorm:"type:varchar(20);not null;default:'Employee'"`
	IsApproved bool      `gorm:"default:false"` // pending approval by Admin
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}

// RevokedToken is append-only. A jti present here is permanently invalid,
// even before its natural expiry.
type RevokedToken struct {
	ID        uint   `gorm:"primaryKey"`
	Jti       string `gorm:"type:varchar(120);not null;index"`
	CreatedAt time.Time
}

func (RevokedToken) TableName() string {
	return "revoked_tokens"
}
