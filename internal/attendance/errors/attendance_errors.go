package attendanceerrors

import (
	"go-staffpay/internal/shared/apperror"
	"net/http"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"Active full-time staff member not found",
		http.StatusNotFound,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid staff ID",
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
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be Present, Half Day or Absent",
		http.StatusBadRequest,
	)
	ErrInvalidShift = apperror.New(
		apperror.CodeInvalidInput,
		"Shift must be Morning, Evening or Both",
		http.StatusBadRequest,
	)
	ErrBulkStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Bulk marking only supports Present or Absent",
		http.StatusBadRequest,
	)
	ErrDuplicatePartTime = apperror.New(
		apperror.CodeInputIntegrity,
		"This part-time staff member is already recorded for an overlapping shift on this date",
		http.StatusConflict,
	)
	ErrNameIsFullTimeStaff = apperror.New(
		apperror.CodeInputIntegrity,
		"This name belongs to an active full-time staff member",
		http.StatusConflict,
	)
	ErrEmptyPartTimeBatch = apperror.New(
		apperror.CodeInvalidInput,
		"At least one part-time entry is required",
		http.StatusBadRequest,
	)
	ErrNotPartTime = apperror.New(
		apperror.CodeInvalidState,
		"Only part-time attendance entries can be deleted",
		http.StatusBadRequest,
	)
	ErrAttendanceExists = apperror.New(
		apperror.CodeConflict,
		"Attendance already recorded for this staff member on this date",
		http.StatusConflict,
	)
)
