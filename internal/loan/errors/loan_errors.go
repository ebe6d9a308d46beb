package errors

import (
	"net/http"

	"centraljuan-hris/internal/shared/apperror"
)

var (
	ErrLoanNotFound = apperror.New(
		apperror.CodeNotFound,
		"Loan not found",
		http.StatusNotFound,
	)

	ErrLoanPaid = apperror.New(
		apperror.CodeInvalidState,
		"Loan balance is already settled",
		http.StatusUnprocessableEntity,
	)

	ErrSkipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Skip request not found",
		http.StatusNotFound,
	)

	ErrSkipNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending skip requests can be decided",
		http.StatusUnprocessableEntity,
	)

	ErrAmountNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be greater than zero",
		http.StatusBadRequest,
	)
)
