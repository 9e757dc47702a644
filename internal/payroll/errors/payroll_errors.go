package payrollerrors

import (
	"go-staffpay/internal/shared/apperror"
	"net/http"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Staff member not found",
		http.StatusNotFound,
	)
	ErrNotFullTime = apperror.New(
		apperror.CodeInvalidState,
		"Salary details are only computed for full-time staff",
		http.StatusBadRequest,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid staff ID",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be between 1 and 12 and year must be positive",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Advance and deduction amounts must not be negative",
		http.StatusBadRequest,
	)
	ErrEmptyOverride = apperror.New(
		apperror.CodeInvalidInput,
		"An override must replace at least one component",
		http.StatusBadRequest,
	)
	ErrOverrideNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary override not found",
		http.StatusNotFound,
	)
	ErrAdvanceConflict = apperror.New(
		apperror.CodeConflict,
		"Advance for this staff member and period was written concurrently",
		http.StatusConflict,
	)
	ErrOverrideConflict = apperror.New(
		apperror.CodeConflict,
		"Override for this staff member and period was written concurrently",
		http.StatusConflict,
	)
	ErrSlipQueueUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Salary slip publishing is not configured",
		http.StatusServiceUnavailable,
	)
)
