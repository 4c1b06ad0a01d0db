package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	usererrors "github.com/Kizito57/leave-management-system/internal/user/errors"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	// Review applies an admin decision to a pending registration. Approve is
	// idempotent in effect; reject deletes the row, so a second call on the
	// same id returns not-found.
	Review(ctx context.Context, req ApproveUserRequest) (string, error)
	Pending(ctx context.Context) ([]PendingUserResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Review(ctx context.Context, req ApproveUserRequest) (string, error) {
	if req.Action != ActionApprove && req.Action != ActionReject {
		return "", usererrors.ErrInvalidApprovalAction
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review user begin tx failed", zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usererrors.ErrUserNotFound
		}
		return "", err
	}

	switch req.Action {
	case ActionApprove:
		if err := qtx.SetApproved(ctx, u.ID); err != nil {
			s.logger.Error("approve user persist failed", zap.Uint("user_id", u.ID), zap.Error(err))
			return "", err
		}
	case ActionReject:
		if err := qtx.Delete(ctx, u.ID); err != nil {
			s.logger.Error("reject user delete failed", zap.Uint("user_id", u.ID), zap.Error(err))
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review user commit failed", zap.Uint("user_id", u.ID), zap.Error(err))
		return "", err
	}

	s.logger.Info("user reviewed",
		zap.Uint("user_id", u.ID),
		zap.String("action", req.Action),
	)
	return fmt.Sprintf("User %sd successfully", req.Action), nil
}

func (s *service) Pending(ctx context.Context) ([]PendingUserResponse, error) {
	users, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PendingUserResponse, len(users))
	for i, u := range users {
		resp[i] = PendingUserResponse{
			ID:    u.ID,
			Email: u.Email,
			Role:  u.Role,
		}
	}
	return resp, nil
}
