package errors

import (
	"net/http"

	"centraljuan-hris/internal/shared/apperror"
)

var (
	ErrRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Reward rule not found",
		http.StatusNotFound,
	)

	ErrNotEligible = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not eligible for a manual reward entry",
		http.StatusUnprocessableEntity,
	)

	ErrDescriptionTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Description must be at least 3 characters",
		http.StatusBadRequest,
	)
)
