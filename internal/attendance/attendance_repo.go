package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-staffpay/internal/shared/dbtx"
	"go-staffpay/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	employmentFullTime = "full_time"
)

type ListFilter struct {
	From     time.Time
	To       time.Time
	PartTime *bool
	StaffID  *uuid.UUID
}

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	UpsertFullTime(ctx context.Context, rows []Attendance) error
	CreatePartTime(ctx context.Context, rows []Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	Update(ctx context.Context, row *Attendance) error
	Delete(ctx context.Context, id string) error
	FindBetween(ctx context.Context, filter ListFilter) ([]Attendance, error)
	FindPartTimeOnDate(ctx context.Context, date time.Time) ([]Attendance, error)
	FindActiveFullTimeStaff(ctx context.Context, location string) ([]StaffRef, error)
	FindActiveFullTimeByID(ctx context.Context, id string) (*StaffRef, error)
	FindActiveFullTimeNames(ctx context.Context, nameKeys []string) ([]string, error)
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

// UpsertFullTime writes one row per (staff_id, attendance_date), last write wins.
func (r *repository) UpsertFullTime(ctx context.Context, rows []Attendance) error {
	if len(rows) == 0 {
		return nil
	}
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "staff_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status", "attendance_value", "shift", "location_override", "updated_at",
			}),
		}).
		Create(&rows).Error
}

func (r *repository) CreatePartTime(ctx context.Context, rows []Attendance) error {
	if len(rows) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&rows).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var row Attendance
	err := r.conn(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Update(ctx context.Context, row *Attendance) error {
	return r.conn(ctx).Save(row).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Attendance{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindBetween(ctx context.Context, filter ListFilter) ([]Attendance, error) {
	var rows []Attendance
	q := r.conn(ctx).Scopes(scope.DateBetween("attendance_date", filter.From, filter.To))
	if filter.PartTime != nil {
		q = q.Where("is_part_time = ?", *filter.PartTime)
	}
	if filter.StaffID != nil {
		q = q.Where("staff_id = ?", *filter.StaffID)
	}
	err := q.Order("attendance_date ASC, created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindPartTimeOnDate(ctx context.Context, date time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Where("is_part_time = ?", true).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveFullTimeStaff(ctx context.Context, location string) ([]StaffRef, error) {
	var staff []StaffRef
	err := r.conn(ctx).
		Scopes(scope.Location(location)).
		Where("employment_type = ?", employmentFullTime).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *repository) FindActiveFullTimeByID(ctx context.Context, id string) (*StaffRef, error) {
	var ref StaffRef
	err := r.conn(ctx).
		Where("employment_type = ?", employmentFullTime).
		Where("is_active = ?", true).
		First(&ref, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// FindActiveFullTimeNames returns the lower-cased active full-time names among nameKeys.
func (r *repository) FindActiveFullTimeNames(ctx context.Context, nameKeys []string) ([]string, error) {
	if len(nameKeys) == 0 {
		return nil, nil
	}
	var names []string
	err := r.conn(ctx).
		Model(&StaffRef{}).
		Where("employment_type = ?", employmentFullTime).
		Where("is_active = ?", true).
		Where("LOWER(TRIM(name)) IN ?", nameKeys).
		Pluck("LOWER(TRIM(name))", &names).Error
	return names, err
}
