package leave

type ApplyLeaveRequest struct {
	LeaveTypeID uint   `json:"leave_type_id" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

type ReviewLeaveRequest struct {
	LeaveRequestID uint   `json:"leave_request_id" binding:"required"`
	Action         string `json:"action" binding:"required"`
}

type AdminLeaveRequestResponse struct {
	ID        uint   `json:"id"`
	UserEmail string `json:"user_email"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type LeaveHistoryItem struct {
	ID        uint   `json:"id"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	// Duration counts both endpoints: 2024-01-01..2024-01-03 is 3 days.
	Duration int `json:"duration"`
}

type LeaveStatsResponse struct {
	TotalRequests    int64           `json:"total_requests"`
	PendingRequests  int64           `json:"pending_requests"`
	ApprovedRequests int64           `json:"approved_requests"`
	RejectedRequests int64           `json:"rejected_requests"`
	LeaveTypeStats   []LeaveTypeStat `json:"leave_type_stats"`
}
