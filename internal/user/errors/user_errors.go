package usererrors

import (
	"net/http"

	"github.com/Kizito57/leave-management-system/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidApprovalAction = apperror.New(
		apperror.CodeInvalidInput,
		"User ID and valid action ('approve' or 'reject') are required",
		http.StatusBadRequest,
	)
)
