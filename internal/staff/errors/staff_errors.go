package stafferrors

import (
	"go-staffpay/internal/shared/apperror"
	"net/http"
)

var (
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Staff not found",
		http.StatusNotFound,
	)
	ErrOldStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Old staff record not found",
		http.StatusNotFound,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid staff ID",
		http.StatusBadRequest,
	)
	ErrMissingContact = apperror.New(
		apperror.CodeInvalidInput,
		"Name, phone and location are required",
		http.StatusBadRequest,
	)
	ErrInvalidEmploymentType = apperror.New(
		apperror.CodeInvalidInput,
		"Employment type must be full_time or part_time",
		http.StatusBadRequest,
	)
	ErrUnknownCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Supplement category is not configured",
		http.StatusBadRequest,
	)
	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Salary components cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrLeaveReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Leave reason is required",
		http.StatusBadRequest,
	)
	ErrAlreadyArchived = apperror.New(
		apperror.CodeInvalidState,
		"Staff is already archived",
		http.StatusConflict,
	)
	ErrStaffCodeExists = apperror.New(
		apperror.CodeConflict,
		"Staff code already exists",
		http.StatusConflict,
	)
)
