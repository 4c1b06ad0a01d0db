package leave_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Kizito57/leave-management-system/internal/leave"
	leaveerrors "github.com/Kizito57/leave-management-system/internal/leave/errors"
)

type fakeLeaveRepo struct {
	createFn             func(ctx context.Context, lr *leave.LeaveRequest) error
	findByIDFn           func(ctx context.Context, id uint) (*leave.LeaveRequest, error)
	updateStatusFn       func(ctx context.Context, id uint, status string) error
	findAllDetailedFn    func(ctx context.Context) ([]leave.LeaveRequestDetail, error)
	findByUserDetailedFn func(ctx context.Context, userID uint) ([]leave.LeaveRequestDetail, error)
	leaveTypeExistsFn    func(ctx context.Context, leaveTypeID uint) (bool, error)
	countAllFn           func(ctx context.Context) (int64, error)
	countByStatusFn      func(ctx context.Context, status string) (int64, error)
	typeStatsFn          func(ctx context.Context) ([]leave.LeaveTypeStat, error)
}

func (f *fakeLeaveRepo) WithTx(tx *sql.Tx) leave.Repository { return f }

func (f *fakeLeaveRepo) Create(ctx context.Context, lr *leave.LeaveRequest) error {
	return f.createFn(ctx, lr)
}

func (f *fakeLeaveRepo) FindByID(ctx context.Context, id uint) (*leave.LeaveRequest, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id uint, status string) error {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakeLeaveRepo) FindAllDetailed(ctx context.Context) ([]leave.LeaveRequestDetail, error) {
	return f.findAllDetailedFn(ctx)
}

func (f *fakeLeaveRepo) FindByUserDetailed(ctx context.Context, userID uint) ([]leave.LeaveRequestDetail, error) {
	return f.findByUserDetailedFn(ctx, userID)
}

func (f *fakeLeaveRepo) LeaveTypeExists(ctx context.Context, leaveTypeID uint) (bool, error) {
	return f.leaveTypeExistsFn(ctx, leaveTypeID)
}

func (f *fakeLeaveRepo) CountAll(ctx context.Context) (int64, error) {
	return f.countAllFn(ctx)
}

func (f *fakeLeaveRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return f.countByStatusFn(ctx, status)
}

func (f *fakeLeaveRepo) TypeStats(ctx context.Context) ([]leave.LeaveTypeStat, error) {
	return f.typeStatsFn(ctx)
}

func strPtr(s string) *string { return &s }

func date(v string) time.Time {
	t, _ := time.Parse("2006-01-02", v)
	return t
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()

	valid := leave.ApplyLeaveRequest{
		LeaveTypeID: 1,
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-05",
	}

	t.Run("creates a pending request", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		var created *leave.LeaveRequest
		repo := &fakeLeaveRepo{
			leaveTypeExistsFn: func(ctx context.Context, leaveTypeID uint) (bool, error) {
				return true, nil
			},
			createFn: func(ctx context.Context, lr *leave.LeaveRequest) error {
				created = lr
				return nil
			},
		}

		service := leave.NewService(db, repo)
		assert.NoError(t, service.Apply(ctx, 7, valid))

		assert.Equal(t, uint(7), created.UserID)
		assert.Equal(t, leave.StatusPending, created.Status)
		assert.Equal(t, date("2026-09-01"), created.StartDate)
		assert.Equal(t, date("2026-09-05"), created.EndDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("single day leave is allowed", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeLeaveRepo{
			leaveTypeExistsFn: func(ctx context.Context, leaveTypeID uint) (bool, error) {
				return true, nil
			},
			createFn: func(ctx context.Context, lr *leave.LeaveRequest) error {
				return nil
			},
		}

		service := leave.NewService(db, repo)
		assert.NoError(t, service.Apply(ctx, 7, leave.ApplyLeaveRequest{
			LeaveTypeID: 1,
			StartDate:   "2026-09-01",
			EndDate:     "2026-09-01",
		}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("malformed date", func(t *testing.T) {
		service := leave.NewService(nil, &fakeLeaveRepo{})

		err := service.Apply(ctx, 7, leave.ApplyLeaveRequest{
			LeaveTypeID: 1,
			StartDate:   "01/09/2026",
			EndDate:     "2026-09-05",
		})
		assert.True(t, errors.Is(err, leaveerrors.ErrInvalidDateFormat))
	})

	t.Run("end before start", func(t *testing.T) {
		service := leave.NewService(nil, &fakeLeaveRepo{})

		err := service.Apply(ctx, 7, leave.ApplyLeaveRequest{
			LeaveTypeID: 1,
			StartDate:   "2026-09-05",
			EndDate:     "2026-09-01",
		})
		assert.True(t, errors.Is(err, leaveerrors.ErrInvalidDateRange))
	})

	t.Run("unknown leave type", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveRepo{
			leaveTypeExistsFn: func(ctx context.Context, leaveTypeID uint) (bool, error) {
				return false, nil
			},
		}

		service := leave.NewService(db, repo)
		err = service.Apply(ctx, 7, valid)

		assert.True(t, errors.Is(err, leaveerrors.ErrUnknownLeaveType))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestService_Review(t *testing.T) {
	ctx := context.Background()

	pendingRequest := &leave.LeaveRequest{ID: 10, UserID: 7, Status: leave.StatusPending}

	run := func(t *testing.T, stored *leave.LeaveRequest, action string) (string, string, error) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectRollback()

		var updatedStatus string
		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id uint) (*leave.LeaveRequest, error) {
				return stored, nil
			},
			updateStatusFn: func(ctx context.Context, id uint, status string) error {
				updatedStatus = status
				return nil
			},
		}

		service := leave.NewService(db, repo)
		msg, err := service.Review(ctx, leave.ReviewLeaveRequest{LeaveRequestID: 10, Action: action})
		return msg, updatedStatus, err
	}

	t.Run("approve", func(t *testing.T) {
		msg, status, err := run(t, pendingRequest, leave.ActionApprove)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, status)
		assert.Equal(t, "Leave request approved successfully", msg)
	})

	t.Run("reject", func(t *testing.T) {
		msg, status, err := run(t, pendingRequest, leave.ActionReject)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, status)
		assert.Equal(t, "Leave request rejectd successfully", msg)
	})

	t.Run("already reviewed", func(t *testing.T) {
		approved := &leave.LeaveRequest{ID: 10, Status: leave.StatusApproved}
		_, status, err := run(t, approved, leave.ActionReject)
		assert.True(t, errors.Is(err, leaveerrors.ErrAlreadyReviewed))
		assert.Empty(t, status)
	})

	t.Run("unknown request", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveRepo{
			findByIDFn: func(ctx context.Context, id uint) (*leave.LeaveRequest, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		service := leave.NewService(db, repo)
		_, err = service.Review(ctx, leave.ReviewLeaveRequest{LeaveRequestID: 99, Action: leave.ActionApprove})

		assert.True(t, errors.Is(err, leaveerrors.ErrLeaveRequestNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid action", func(t *testing.T) {
		service := leave.NewService(nil, &fakeLeaveRepo{})

		_, err := service.Review(ctx, leave.ReviewLeaveRequest{LeaveRequestID: 10, Action: "defer"})
		assert.True(t, errors.Is(err, leaveerrors.ErrInvalidReviewAction))
	})
}

func TestService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("joins email and type name", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findAllDetailedFn: func(ctx context.Context) ([]leave.LeaveRequestDetail, error) {
				return []leave.LeaveRequestDetail{
					{
						LeaveRequest: leave.LeaveRequest{
							ID:        1,
							UserID:    7,
							StartDate: date("2026-09-01"),
							EndDate:   date("2026-09-05"),
							Status:    leave.StatusPending,
						},
						UserEmail:     strPtr("emp@x.com"),
						LeaveTypeName: strPtr("Annual Leave"),
					},
				}, nil
			},
		}

		service := leave.NewService(nil, repo)
		resp, err := service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "emp@x.com", resp[0].UserEmail)
		assert.Equal(t, "Annual Leave", resp[0].LeaveType)
		assert.Equal(t, "2026-09-01", resp[0].StartDate)
	})

	t.Run("dangling user reference is an integrity error", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findAllDetailedFn: func(ctx context.Context) ([]leave.LeaveRequestDetail, error) {
				return []leave.LeaveRequestDetail{
					{
						LeaveRequest:  leave.LeaveRequest{ID: 2, UserID: 99},
						UserEmail:     nil,
						LeaveTypeName: strPtr("Annual Leave"),
					},
				}, nil
			},
		}

		service := leave.NewService(nil, repo)
		_, err := service.GetAll(ctx)

		assert.True(t, errors.Is(err, leaveerrors.ErrBrokenReference))
	})
}

func TestService_History(t *testing.T) {
	ctx := context.Background()

	t.Run("duration covers both endpoints", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findByUserDetailedFn: func(ctx context.Context, userID uint) ([]leave.LeaveRequestDetail, error) {
				assert.Equal(t, uint(7), userID)
				return []leave.LeaveRequestDetail{
					{
						LeaveRequest: leave.LeaveRequest{
							ID:        1,
							UserID:    7,
							StartDate: date("2024-01-01"),
							EndDate:   date("2024-01-03"),
							Status:    leave.StatusApproved,
						},
						LeaveTypeName: strPtr("Annual Leave"),
					},
					{
						LeaveRequest: leave.LeaveRequest{
							ID:        2,
							UserID:    7,
							StartDate: date("2024-02-10"),
							EndDate:   date("2024-02-10"),
							Status:    leave.StatusPending,
						},
						LeaveTypeName: strPtr("Sick Leave"),
					},
				}, nil
			},
		}

		service := leave.NewService(nil, repo)
		resp, err := service.History(ctx, 7, true)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, 3, resp[0].Duration)
		assert.Equal(t, 1, resp[1].Duration)
	})

	t.Run("unapproved account cannot read history", func(t *testing.T) {
		service := leave.NewService(nil, &fakeLeaveRepo{})

		_, err := service.History(ctx, 7, false)
		assert.True(t, errors.Is(err, leaveerrors.ErrUserNotApproved))
	})

	t.Run("dangling leave type is an integrity error", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			findByUserDetailedFn: func(ctx context.Context, userID uint) ([]leave.LeaveRequestDetail, error) {
				return []leave.LeaveRequestDetail{
					{LeaveRequest: leave.LeaveRequest{ID: 3, UserID: 7}},
				}, nil
			},
		}

		service := leave.NewService(nil, repo)
		_, err := service.History(ctx, 7, true)

		assert.True(t, errors.Is(err, leaveerrors.ErrBrokenReference))
	})
}

func TestService_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates counts and per type totals", func(t *testing.T) {
		counts := map[string]int64{
			leave.StatusPending:  2,
			leave.StatusApproved: 3,
			leave.StatusRejected: 1,
		}
		repo := &fakeLeaveRepo{
			countAllFn: func(ctx context.Context) (int64, error) { return 6, nil },
			countByStatusFn: func(ctx context.Context, status string) (int64, error) {
				return counts[status], nil
			},
			typeStatsFn: func(ctx context.Context) ([]leave.LeaveTypeStat, error) {
				return []leave.LeaveTypeStat{
					{Name: "Annual Leave", TotalRequests: 4},
					{Name: "Sick Leave", TotalRequests: 2},
					{Name: "Unused Type", TotalRequests: 0},
				}, nil
			},
		}

		service := leave.NewService(nil, repo)
		resp, err := service.Stats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(6), resp.TotalRequests)
		assert.Equal(t, int64(2), resp.PendingRequests)
		assert.Equal(t, int64(3), resp.ApprovedRequests)
		assert.Equal(t, int64(1), resp.RejectedRequests)
		assert.Len(t, resp.LeaveTypeStats, 3)
		assert.Equal(t, int64(0), resp.LeaveTypeStats[2].TotalRequests)
	})

	t.Run("no types means an empty list, not null", func(t *testing.T) {
		repo := &fakeLeaveRepo{
			countAllFn:      func(ctx context.Context) (int64, error) { return 0, nil },
			countByStatusFn: func(ctx context.Context, status string) (int64, error) { return 0, nil },
			typeStatsFn:     func(ctx context.Context) ([]leave.LeaveTypeStat, error) { return nil, nil },
		}

		service := leave.NewService(nil, repo)
		resp, err := service.Stats(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, resp.LeaveTypeStats)
		assert.Empty(t, resp.LeaveTypeStats)
	})
}
