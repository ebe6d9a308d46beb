package errors

import (
	"net/http"

	"centraljuan-hris/internal/shared/apperror"
)

var (
	ErrRowNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll row not found",
		http.StatusNotFound,
	)

	ErrRowFinal = apperror.New(
		apperror.CodeInvalidState,
		"Payroll row is finalized and can no longer be modified",
		http.StatusUnprocessableEntity,
	)

	ErrEmptyCutoff = apperror.New(
		apperror.CodeInvalidInput,
		"No active employees found for this cutoff",
		http.StatusBadRequest,
	)

	ErrInvalidCutoff = apperror.New(
		apperror.CodeInvalidInput,
		"date_from must not be after date_until",
		http.StatusBadRequest,
	)
)
