package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-staffpay/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.Equal(t, apperror.CodeNotFound, httpErr.Code)
		assert.Nil(t, httpErr.Details)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("load staff: %w", apperror.ErrInvalidInput.WithCause(errors.New("bad month")))
		httpErr := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "bad month", httpErr.Details)
	})

	t.Run("unknown error hides its message", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "pq")
	})
}

func TestAppError_IsMatchesCopies(t *testing.T) {
	wrapped := apperror.ErrNotFound.WithCause(errors.New("record not found"))

	assert.ErrorIs(t, wrapped, apperror.ErrNotFound)
	assert.NotErrorIs(t, wrapped, apperror.ErrInvalidInput)
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		StaffName string `validate:"required"`
		Shift     string `validate:"oneof=Morning Evening Both"`
	}
	v := validator.New()

	err := apperror.MapValidationError(v.Struct(payload{Shift: "Both"}))
	assert.Equal(t, "Staffname is required", err.Error())

	err = apperror.MapValidationError(v.Struct(payload{StaffName: "Ravi", Shift: "Night"}))
	assert.Equal(t, "Shift is invalid", err.Error())

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
