package leavetype

type UpsertLeaveTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type LeaveTypeResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
