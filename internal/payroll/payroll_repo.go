package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/shared/dbtx"
	"go-staffpay/internal/shared/scope"
	"go-staffpay/internal/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindActiveFullTimeStaff(ctx context.Context, location string) ([]staff.Staff, error)
	FindStaffByID(ctx context.Context, id string) (*staff.Staff, error)
	FindFullTimeAttendance(ctx context.Context, from, to time.Time, staffIDs []uuid.UUID) ([]attendance.Attendance, error)
	FindAdvances(ctx context.Context, staffIDs []uuid.UUID) ([]AdvanceDeduction, error)
	UpsertAdvance(ctx context.Context, row *AdvanceDeduction) error
	FindOverrides(ctx context.Context, year int, month time.Month) ([]SalaryOverride, error)
	FindOverride(ctx context.Context, staffID uuid.UUID, year int, month time.Month) (*SalaryOverride, error)
	UpsertOverride(ctx context.Context, row *SalaryOverride) error
	DeleteOverride(ctx context.Context, staffID uuid.UUID, year int, month time.Month) error
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

func (r *repository) FindActiveFullTimeStaff(ctx context.Context, location string) ([]staff.Staff, error) {
	var rows []staff.Staff
	err := r.conn(ctx).
		Scopes(scope.Location(location)).
		Where("employment_type = ?", staff.EmploymentFullTime).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindStaffByID(ctx context.Context, id string) (*staff.Staff, error) {
	var row staff.Staff
	if err := r.conn(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindFullTimeAttendance(ctx context.Context, from, to time.Time, staffIDs []uuid.UUID) ([]attendance.Attendance, error) {
	var rows []attendance.Attendance
	q := r.conn(ctx).
		Scopes(scope.DateBetween("attendance_date", from, to)).
		Where("is_part_time = ?", false)
	if len(staffIDs) > 0 {
		q = q.Where("staff_id IN ?", staffIDs)
	}
	err := q.Order("attendance_date ASC").Find(&rows).Error
	return rows, err
}

// FindAdvances returns the full advance history of the given staff, newest first.
func (r *repository) FindAdvances(ctx context.Context, staffIDs []uuid.UUID) ([]AdvanceDeduction, error) {
	var rows []AdvanceDeduction
	q := r.conn(ctx)
	if len(staffIDs) > 0 {
		q = q.Where("staff_id IN ?", staffIDs)
	}
	err := q.Order("year DESC, month DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) UpsertAdvance(ctx context.Context, row *AdvanceDeduction) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "staff_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"old_advance", "current_advance", "deduction", "new_advance", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *repository) FindOverrides(ctx context.Context, year int, month time.Month) ([]SalaryOverride, error) {
	var rows []SalaryOverride
	err := r.conn(ctx).Scopes(scope.Period(year, month)).Find(&rows).Error
	return rows, err
}

func (r *repository) FindOverride(ctx context.Context, staffID uuid.UUID, year int, month time.Month) (*SalaryOverride, error) {
	var row SalaryOverride
	err := r.conn(ctx).
		Scopes(scope.Period(year, month)).
		Where("staff_id = ?", staffID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) UpsertOverride(ctx context.Context, row *SalaryOverride) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "staff_id"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"basic", "incentive", "hra", "meal_allowance", "sunday_penalty", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *repository) DeleteOverride(ctx context.Context, staffID uuid.UUID, year int, month time.Month) error {
	res := r.conn(ctx).
		Scopes(scope.Period(year, month)).
		Where("staff_id = ?", staffID).
		Delete(&SalaryOverride{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
