package parttime

import (
	"context"
	"database/sql"
	"time"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/shared/dbtx"
	"go-staffpay/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AdvanceFilter bounds advance records by period; a zero period is unbounded.
// Periods are written year*100+month.
type AdvanceFilter struct {
	NameKey    string
	Location   string
	FromPeriod int
	ToPeriod   int
}

//go:generate mockgen -source=parttime_repo.go -destination=mock/parttime_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAttendance(ctx context.Context, from, to time.Time, nameKey string) ([]attendance.Attendance, error)
	FindAdvanceRecords(ctx context.Context, filter AdvanceFilter) ([]AdvanceRecord, error)
	UpsertAdvanceRecord(ctx context.Context, row *AdvanceRecord) error
	FindSettlements(ctx context.Context, nameKey, location string, keys []string) ([]Settlement, error)
	UpsertSettlements(ctx context.Context, rows []Settlement) error
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Bind(ctx, r.db, r.tx)
}

func (r *repository) FindAttendance(ctx context.Context, from, to time.Time, nameKey string) ([]attendance.Attendance, error) {
	var rows []attendance.Attendance
	q := r.conn(ctx).
		Scopes(scope.DateBetween("attendance_date", from, to)).
		Where("is_part_time = ?", true)
	if nameKey != "" {
		q = q.Scopes(scope.NameKey(nameKey))
	}
	err := q.Order("attendance_date ASC, created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindAdvanceRecords(ctx context.Context, filter AdvanceFilter) ([]AdvanceRecord, error) {
	var rows []AdvanceRecord
	q := r.conn(ctx).Scopes(scope.Location(filter.Location))
	if filter.NameKey != "" {
		q = q.Scopes(scope.NameKey(filter.NameKey))
	}
	if filter.FromPeriod > 0 {
		q = q.Where("year * 100 + month >= ?", filter.FromPeriod)
	}
	if filter.ToPeriod > 0 {
		q = q.Where("year * 100 + month <= ?", filter.ToPeriod)
	}
	err := q.Order("year DESC, month DESC, week_number DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) UpsertAdvanceRecord(ctx context.Context, row *AdvanceRecord) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "name_key"}, {Name: "location"}, {Name: "year"}, {Name: "month"}, {Name: "week_number"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"staff_name", "opening_balance", "advance_given", "earnings",
				"adjustment", "closing_balance", "pending_salary", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *repository) FindSettlements(ctx context.Context, nameKey, location string, keys []string) ([]Settlement, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	var rows []Settlement
	err := r.conn(ctx).
		Scopes(scope.NameKey(nameKey)).
		Where("location = ?", location).
		Where("settlement_key IN ?", keys).
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpsertSettlements(ctx context.Context, rows []Settlement) error {
	if len(rows) == 0 {
		return nil
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name_key"}, {Name: "location"}, {Name: "settlement_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"settled", "updated_at"}),
		}).
		Create(&rows).Error
}
