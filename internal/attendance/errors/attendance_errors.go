package errors

import (
	"net/http"

	"centraljuan-hris/internal/shared/apperror"
)

var (
	ErrRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)

	ErrDuplicateDay = apperror.New(
		apperror.CodeConflict,
		"An attendance record already exists for this employee and date",
		http.StatusConflict,
	)

	ErrRestDayEntry = apperror.New(
		apperror.CodeInvalidState,
		"Attendance cannot be recorded on a rest day",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"date_from must not be after date_until",
		http.StatusBadRequest,
	)
)
