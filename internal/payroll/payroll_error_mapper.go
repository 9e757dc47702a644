package payroll

import (
	"errors"
	"strings"

	payrollerrors "go-staffpay/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_advance_staff_period":
			return payrollerrors.ErrAdvanceConflict
		case "uq_override_staff_period":
			return payrollerrors.ErrOverrideConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_advance_staff_period") {
			return payrollerrors.ErrAdvanceConflict
		}
		if strings.Contains(errMsg, "uq_override_staff_period") {
			return payrollerrors.ErrOverrideConflict
		}
	}

	return err
}
