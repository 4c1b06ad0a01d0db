package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=revocation_repo.go -destination=mock/revocation_repo_mock.go -package=mock

// Ledger is the persisted record of invalidated token ids. There is no
// un-revoke operation.
type Ledger interface {
	Revoke(ctx context.Context, jti string) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) Ledger {
	return &ledger{db: db}
}

// Revoke appends the jti. Duplicate appends are harmless: checks are
// existence-only.
func (l *ledger) Revoke(ctx context.Context, jti string) error {
	return l.db.WithContext(ctx).Create(&RevokedToken{Jti: jti}).Error
}

func (l *ledger) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := l.db.WithContext(ctx).
		Model(&RevokedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error
	return count > 0, err
}
