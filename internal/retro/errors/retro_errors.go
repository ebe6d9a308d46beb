package errors

import (
	"net/http"

	"centraljuan-hris/internal/shared/apperror"
)

var (
	ErrRetroNotFound = apperror.New(
		apperror.CodeNotFound,
		"Retro adjustment not found",
		http.StatusNotFound,
	)

	ErrAlreadyApplied = apperror.New(
		apperror.CodeInvalidState,
		"Retro adjustment has already been applied",
		http.StatusUnprocessableEntity,
	)

	ErrZeroAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be non-zero",
		http.StatusBadRequest,
	)
)
