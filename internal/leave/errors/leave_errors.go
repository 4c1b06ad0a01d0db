package leaveerrors

import (
	"net/http"

	"github.com/Kizito57/leave-management-system/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown leave type",
		http.StatusBadRequest,
	)
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidReviewAction = apperror.New(
		apperror.CodeInvalidInput,
		"Leave request ID and valid action ('approve' or 'reject') are required",
		http.StatusBadRequest,
	)
	ErrAlreadyReviewed = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been reviewed",
		http.StatusBadRequest,
	)
	ErrUserNotApproved = apperror.New(
		apperror.CodeForbidden,
		"User account is not approved",
		http.StatusForbidden,
	)
	ErrBrokenReference = apperror.New(
		apperror.CodeInternalError,
		"Leave request references a missing user or leave type",
		http.StatusInternalServerError,
	)
)
