package user

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindByID(ctx context.Context, id uint) (*User, error)
	FindPending(ctx context.Context) ([]User, error)
	SetApproved(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindByID(ctx context.Context, id uint) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *repository) FindPending(ctx context.Context) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Where("is_approved = ?", false).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) SetApproved(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}

// Delete removes the row permanently. Rejected registrations are not kept.
func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Delete(&User{}, "id = ?", id).Error
}
