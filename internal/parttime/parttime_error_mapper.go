package parttime

import (
	"errors"
	"strings"

	parttimeerrors "go-staffpay/internal/parttime/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return parttimeerrors.ErrAdvanceRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_pt_advance_week":
			return parttimeerrors.ErrAdvanceConflict
		case "uq_pt_settlement_key":
			return parttimeerrors.ErrSettlementConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_pt_advance_week") {
		return parttimeerrors.ErrAdvanceConflict
	}

	return err
}
