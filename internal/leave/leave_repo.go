package leave

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, lr *LeaveRequest) error
	FindByID(ctx context.Context, id uint) (*LeaveRequest, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	FindAllDetailed(ctx context.Context) ([]LeaveRequestDetail, error)
	FindByUserDetailed(ctx context.Context, userID uint) ([]LeaveRequestDetail, error)
	LeaveTypeExists(ctx context.Context, leaveTypeID uint) (bool, error)
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	TypeStats(ctx context.Context) ([]LeaveTypeStat, error)
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

func (r *repository) Create(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Detailed reads LEFT JOIN the relations so a dangling reference comes back
// as NULL instead of dropping the row; the service decides what that means.
func (r *repository) FindAllDetailed(ctx context.Context) ([]LeaveRequestDetail, error) {
	var details []LeaveRequestDetail
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("leave_requests.*, users.email AS user_email, leave_types.name AS leave_type_name").
		Joins("LEFT JOIN users ON users.id = leave_requests.user_id").
		Joins("LEFT JOIN leave_types ON leave_types.id = leave_requests.leave_type_id").
		Order("leave_requests.created_at DESC").
		Scan(&details).Error
	return details, err
}

func (r *repository) FindByUserDetailed(ctx context.Context, userID uint) ([]LeaveRequestDetail, error) {
	var details []LeaveRequestDetail
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("leave_requests.*, users.email AS user_email, leave_types.name AS leave_type_name").
		Joins("LEFT JOIN users ON users.id = leave_requests.user_id").
		Joins("LEFT JOIN leave_types ON leave_types.id = leave_requests.leave_type_id").
		Where("leave_requests.user_id = ?", userID).
		Order("leave_requests.created_at DESC").
		Scan(&details).Error
	return details, err
}

func (r *repository) LeaveTypeExists(ctx context.Context, leaveTypeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leave_types").
		Where("id = ?", leaveTypeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&LeaveRequest{}).Count(&count).Error
	return count, err
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// TypeStats counts requests per leave type, including types with zero.
func (r *repository) TypeStats(ctx context.Context) ([]LeaveTypeStat, error) {
	var stats []LeaveTypeStat
	err := r.db.WithContext(ctx).
		Table("leave_types").
		Select("leave_types.name AS name, COUNT(leave_requests.id) AS total_requests").
		Joins("LEFT JOIN leave_requests ON leave_requests.leave_type_id = leave_types.id").
		Group("leave_types.id, leave_types.name").
		Order("leave_types.id ASC").
		Scan(&stats).Error
	return stats, err
}
