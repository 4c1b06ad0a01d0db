package leavetypeerrors

import (
	"net/http"

	"github.com/Kizito57/leave-management-system/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)

	// Referenced types stay. The API surfaces this as 400 rather than 409.
	ErrLeaveTypeReferenced = apperror.New(
		apperror.CodeConflict,
		"Cannot delete leave type with existing leave requests",
		http.StatusBadRequest,
	)

	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave type id",
		http.StatusBadRequest,
	)
)
