package leavetype

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	leavetypeerrors "github.com/Kizito57/leave-management-system/internal/leavetype/errors"
)

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req UpsertLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	Update(ctx context.Context, id uint, req UpsertLeaveTypeRequest) (LeaveTypeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req UpsertLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt := &LeaveType{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, lt); err != nil {
		s.logger.Error("create leave type failed", zap.String("name", req.Name), zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("leave type created", zap.Uint("leave_type_id", lt.ID), zap.String("name", lt.Name))
	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapToResponse(lt)
	}
	return resp, nil
}

func (s *service) Update(ctx context.Context, id uint, req UpsertLeaveTypeRequest) (LeaveTypeResponse, error) {
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}

	lt.Name = req.Name
	lt.Description = req.Description
	if err := s.repo.Update(ctx, lt); err != nil {
		s.logger.Error("update leave type failed", zap.Uint("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	return mapToResponse(*lt), nil
}

// Delete removes a leave type unless any leave request references it. The
// reference check and the delete run in one transaction.
func (s *service) Delete(ctx context.Context, id uint) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete leave type begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leavetypeerrors.ErrLeaveTypeNotFound
		}
		return err
	}

	referenced, err := qtx.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		s.logger.Warn("delete leave type blocked, requests reference it", zap.Uint("leave_type_id", id))
		return leavetypeerrors.ErrLeaveTypeReferenced
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete leave type persist failed", zap.Uint("leave_type_id", id), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete leave type commit failed", zap.Uint("leave_type_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("leave type deleted", zap.Uint("leave_type_id", id))
	return nil
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          lt.ID,
		Name:        lt.Name,
		Description: lt.Description,
	}
}
