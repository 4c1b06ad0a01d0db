package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	leaveerrors "github.com/Kizito57/leave-management-system/internal/leave/errors"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, userID uint, req ApplyLeaveRequest) error
	Review(ctx context.Context, req ReviewLeaveRequest) (string, error)
	GetAll(ctx context.Context) ([]AdminLeaveRequestResponse, error)
	Stats(ctx context.Context) (LeaveStatsResponse, error)
	History(ctx context.Context, userID uint, isApproved bool) ([]LeaveHistoryItem, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Apply(ctx context.Context, userID uint, req ApplyLeaveRequest) error {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return err
	}
	if startDate.After(endDate) {
		return leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.LeaveTypeExists(ctx, req.LeaveTypeID)
	if err != nil {
		return err
	}
	if !exists {
		s.logger.Warn("apply leave unknown type",
			zap.Uint("user_id", userID),
			zap.Uint("leave_type_id", req.LeaveTypeID),
		)
		return leaveerrors.ErrUnknownLeaveType
	}

	lr := &LeaveRequest{
		UserID:      userID,
		LeaveTypeID: req.LeaveTypeID,
		StartDate:   startDate,
		EndDate:     endDate,
		Status:      StatusPending,
	}
	if err := qtx.Create(ctx, lr); err != nil {
		s.logger.Error("apply leave persist failed", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Uint("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("leave request submitted",
		zap.Uint("leave_request_id", lr.ID),
		zap.Uint("user_id", userID),
		zap.Uint("leave_type_id", req.LeaveTypeID),
	)
	return nil
}

// Review moves a request out of Pending. Approved and Rejected are terminal;
// a second decision on the same request is rejected.
func (s *service) Review(ctx context.Context, req ReviewLeaveRequest) (string, error) {
	if req.Action != ActionApprove && req.Action != ActionReject {
		return "", leaveerrors.ErrInvalidReviewAction
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("review leave begin tx failed", zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindByID(ctx, req.LeaveRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", leaveerrors.ErrLeaveRequestNotFound
		}
		return "", err
	}
	if lr.Status != StatusPending {
		s.logger.Warn("review leave invalid transition",
			zap.Uint("leave_request_id", lr.ID),
			zap.String("current_status", lr.Status),
		)
		return "", leaveerrors.ErrAlreadyReviewed
	}

	status := StatusApproved
	if req.Action == ActionReject {
		status = StatusRejected
	}
	if err := qtx.UpdateStatus(ctx, lr.ID, status); err != nil {
		s.logger.Error("review leave persist failed", zap.Uint("leave_request_id", lr.ID), zap.Error(err))
		return "", err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("review leave commit failed", zap.Uint("leave_request_id", lr.ID), zap.Error(err))
		return "", err
	}

	s.logger.Info("leave request reviewed",
		zap.Uint("leave_request_id", lr.ID),
		zap.String("status", status),
	)
	return "Leave request " + req.Action + "d successfully", nil
}

func (s *service) GetAll(ctx context.Context) ([]AdminLeaveRequestResponse, error) {
	details, err := s.repo.FindAllDetailed(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AdminLeaveRequestResponse, len(details))
	for i, d := range details {
		if d.UserEmail == nil || d.LeaveTypeName == nil {
			s.logger.Error("leave request with dangling reference",
				zap.Uint("leave_request_id", d.ID),
				zap.Uint("user_id", d.UserID),
				zap.Uint("leave_type_id", d.LeaveTypeID),
			)
			return nil, leaveerrors.ErrBrokenReference
		}
		resp[i] = AdminLeaveRequestResponse{
			ID:        d.ID,
			UserEmail: *d.UserEmail,
			LeaveType: *d.LeaveTypeName,
			StartDate: d.StartDate.Format("2006-01-02"),
			EndDate:   d.EndDate.Format("2006-01-02"),
			Status:    d.Status,
			CreatedAt: d.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

func (s *service) Stats(ctx context.Context) (LeaveStatsResponse, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return LeaveStatsResponse{}, err
	}
	pending, err := s.repo.CountByStatus(ctx, StatusPending)
	if err != nil {
		return LeaveStatsResponse{}, err
	}
	approved, err := s.repo.CountByStatus(ctx, StatusApproved)
	if err != nil {
		return LeaveStatsResponse{}, err
	}
	rejected, err := s.repo.CountByStatus(ctx, StatusRejected)
	if err != nil {
		return LeaveStatsResponse{}, err
	}
	typeStats, err := s.repo.TypeStats(ctx)
	if err != nil {
		return LeaveStatsResponse{}, err
	}
	if typeStats == nil {
		typeStats = []LeaveTypeStat{}
	}

	return LeaveStatsResponse{
		TotalRequests:    total,
		PendingRequests:  pending,
		ApprovedRequests: approved,
		RejectedRequests: rejected,
		LeaveTypeStats:   typeStats,
	}, nil
}

func (s *service) History(ctx context.Context, userID uint, isApproved bool) ([]LeaveHistoryItem, error) {
	if !isApproved {
		return nil, leaveerrors.ErrUserNotApproved
	}

	details, err := s.repo.FindByUserDetailed(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveHistoryItem, len(details))
	for i, d := range details {
		if d.LeaveTypeName == nil {
			s.logger.Error("leave history with dangling leave type",
				zap.Uint("leave_request_id", d.ID),
				zap.Uint("leave_type_id", d.LeaveTypeID),
			)
			return nil, leaveerrors.ErrBrokenReference
		}
		resp[i] = LeaveHistoryItem{
			ID:        d.ID,
			LeaveType: *d.LeaveTypeName,
			StartDate: d.StartDate.Format("2006-01-02"),
			EndDate:   d.EndDate.Format("2006-01-02"),
			Status:    d.Status,
			CreatedAt: d.CreatedAt.Format(time.RFC3339),
			Duration:  inclusiveDays(d.StartDate, d.EndDate),
		}
	}
	return resp, nil
}

// inclusiveDays counts calendar days covering both endpoints.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}
