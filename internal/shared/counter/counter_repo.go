package counter

import (
	"context"
	"database/sql"

	"go-staffpay/internal/shared/dbtx"

	"gorm.io/gorm"
)

const StaffCode = "staff_code"

// Counter is a named monotonically increasing sequence.
type Counter struct {
	CounterType string `gorm:"primaryKey"`
	LastValue   int64  `gorm:"not null;default:0"`
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// single statement upsert keeps concurrent callers from reading the same value
	err := dbtx.Bind(ctx, r.db, r.tx).Raw(`
		INSERT INTO counters (counter_type, last_value)
		VALUES (?, 1)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = counters.last_value + 1
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error
	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
