package parttimeerrors

import (
	"go-staffpay/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidPeriodKind = apperror.New(
		apperror.CodeInvalidInput,
		"Period must be month, week or range",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be between 1 and 12 and year must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidWeek = apperror.New(
		apperror.CodeInvalidInput,
		"Week number is outside the weeks of this month",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"End date must not be before start date",
		http.StatusBadRequest,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeValidation,
		"Staff name is required",
		http.StatusBadRequest,
	)
	ErrLocationRequired = apperror.New(
		apperror.CodeValidation,
		"Location is required",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Advance and opening balance must not be negative",
		http.StatusBadRequest,
	)
	ErrAdvanceRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Part-time advance record not found",
		http.StatusNotFound,
	)
	ErrAdvanceConflict = apperror.New(
		apperror.CodeConflict,
		"Advance for this week was written concurrently",
		http.StatusConflict,
	)
	ErrSettlementConflict = apperror.New(
		apperror.CodeConflict,
		"Settlement for this week was written concurrently",
		http.StatusConflict,
	)
)
