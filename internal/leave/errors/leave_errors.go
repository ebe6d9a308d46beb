package errors

import (
	"net/http"

	"centraljuan-hris/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)

	ErrNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leave requests can be decided",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidSpan = apperror.New(
		apperror.CodeInvalidInput,
		"date_from must not be after date_until",
		http.StatusBadRequest,
	)
)
