package leavetype_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Kizito57/leave-management-system/internal/leavetype"
	leavetypeerrors "github.com/Kizito57/leave-management-system/internal/leavetype/errors"
)

type fakeLeaveTypeRepo struct {
	createFn       func(ctx context.Context, lt *leavetype.LeaveType) error
	findAllFn      func(ctx context.Context) ([]leavetype.LeaveType, error)
	findByIDFn     func(ctx context.Context, id uint) (*leavetype.LeaveType, error)
	updateFn       func(ctx context.Context, lt *leavetype.LeaveType) error
	deleteFn       func(ctx context.Context, id uint) error
	isReferencedFn func(ctx context.Context, id uint) (bool, error)
}

func (f *fakeLeaveTypeRepo) WithTx(tx *sql.Tx) leavetype.Repository { return f }

func (f *fakeLeaveTypeRepo) Create(ctx context.Context, lt *leavetype.LeaveType) error {
	return f.createFn(ctx, lt)
}

func (f *fakeLeaveTypeRepo) FindAll(ctx context.Context) ([]leavetype.LeaveType, error) {
	return f.findAllFn(ctx)
}

func (f *fakeLeaveTypeRepo) FindByID(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeLeaveTypeRepo) Update(ctx context.Context, lt *leavetype.LeaveType) error {
	return f.updateFn(ctx, lt)
}

func (f *fakeLeaveTypeRepo) Delete(ctx context.Context, id uint) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeLeaveTypeRepo) IsReferenced(ctx context.Context, id uint) (bool, error) {
	return f.isReferencedFn(ctx, id)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id on create", func(t *testing.T) {
		repo := &fakeLeaveTypeRepo{
			createFn: func(ctx context.Context, lt *leavetype.LeaveType) error {
				lt.ID = 1
				return nil
			},
		}

		service := leavetype.NewService(nil, repo)
		resp, err := service.Create(ctx, leavetype.UpsertLeaveTypeRequest{
			Name:        "Annual Leave",
			Description: "Paid vacation days",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(1), resp.ID)
		assert.Equal(t, "Annual Leave", resp.Name)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites name and description", func(t *testing.T) {
		repo := &fakeLeaveTypeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
				return &leavetype.LeaveType{ID: 2, Name: "Sick", Description: "old"}, nil
			},
			updateFn: func(ctx context.Context, lt *leavetype.LeaveType) error {
				return nil
			},
		}

		service := leavetype.NewService(nil, repo)
		resp, err := service.Update(ctx, 2, leavetype.UpsertLeaveTypeRequest{
			Name:        "Sick Leave",
			Description: "Medical absence",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Sick Leave", resp.Name)
		assert.Equal(t, "Medical absence", resp.Description)
	})

	t.Run("unknown id", func(t *testing.T) {
		repo := &fakeLeaveTypeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		service := leavetype.NewService(nil, repo)
		_, err := service.Update(ctx, 99, leavetype.UpsertLeaveTypeRequest{Name: "X"})

		assert.True(t, errors.Is(err, leavetypeerrors.ErrLeaveTypeNotFound))
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	existing := &leavetype.LeaveType{ID: 3, Name: "Casual"}

	t.Run("unreferenced type is removed", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectCommit()

		var deletedID uint
		repo := &fakeLeaveTypeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
				return existing, nil
			},
			isReferencedFn: func(ctx context.Context, id uint) (bool, error) {
				return false, nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				deletedID = id
				return nil
			},
		}

		service := leavetype.NewService(db, repo)
		assert.NoError(t, service.Delete(ctx, 3))
		assert.Equal(t, uint(3), deletedID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("referenced type is kept", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveTypeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
				return existing, nil
			},
			isReferencedFn: func(ctx context.Context, id uint) (bool, error) {
				return true, nil
			},
			deleteFn: func(ctx context.Context, id uint) error {
				t.Fatal("delete must not run for a referenced type")
				return nil
			},
		}

		service := leavetype.NewService(db, repo)
		err = service.Delete(ctx, 3)

		assert.True(t, errors.Is(err, leavetypeerrors.ErrLeaveTypeReferenced))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeLeaveTypeRepo{
			findByIDFn: func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		service := leavetype.NewService(db, repo)
		err = service.Delete(ctx, 42)

		assert.True(t, errors.Is(err, leavetypeerrors.ErrLeaveTypeNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestService_GetAll(t *testing.T) {
	ctx := context.Background()

	repo := &fakeLeaveTypeRepo{
		findAllFn: func(ctx context.Context) ([]leavetype.LeaveType, error) {
			return []leavetype.LeaveType{
				{ID: 1, Name: "Annual Leave", Description: "Paid vacation"},
				{ID: 2, Name: "Sick Leave"},
			}, nil
		},
	}

	service := leavetype.NewService(nil, repo)
	resp, err := service.GetAll(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Annual Leave", resp[0].Name)
	assert.Equal(t, uint(2), resp[1].ID)
}
