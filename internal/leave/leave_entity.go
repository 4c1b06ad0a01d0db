package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type LeaveRequest struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	LeaveTypeID uint      `gorm:"not null;index"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt   time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// LeaveRequestDetail is the joined read model. Email and type name are
// pointers: the referenced rows can be gone (rejecting a user hard-deletes
// it), and that must surface as an integrity error, not a nil dereference.
type LeaveRequestDetail struct {
	LeaveRequest
	UserEmail     *string
	LeaveTypeName *string
}

// LeaveTypeStat is one row of the per-type aggregate.
type LeaveTypeStat struct {
	Name          string `json:"name"`
	TotalRequests int64  `json:"total_requests"`
}
