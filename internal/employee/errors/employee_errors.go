package errors

import (
	"net/http"

	"centraljuan-hris/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmployeeNumberTaken = apperror.New(
		apperror.CodeConflict,
		"Employee number already exists",
		http.StatusConflict,
	)

	ErrEmployeeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Employee is not active",
		http.StatusUnprocessableEntity,
	)

	ErrRateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A positive rate matching the salary type is required",
		http.StatusBadRequest,
	)
)
