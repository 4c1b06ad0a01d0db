package user

import "time"

// User is the administration view of the users table. The auth package owns
// writes to credentials; this package only flips approval or removes rows.
type User struct {
	ID         uint   `gorm:"primaryKey"`
	Email      string `gorm:"type:varchar(120);uniqueIndex;not null"`
	Role       string `gorm:"type:varchar(20);not null"`
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (User) TableName() string {
	return "users"
}
