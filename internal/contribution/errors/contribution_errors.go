package errors

import (
	"net/http"

	"centraljuan-hris/internal/shared/apperror"
)

var (
	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Contribution profile not found",
		http.StatusNotFound,
	)

	ErrUnknownField = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown contribution field",
		http.StatusBadRequest,
	)
)
