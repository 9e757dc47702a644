package staff

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"go-staffpay/internal/shared/dbtx"
	"go-staffpay/internal/shared/scope"

	"gorm.io/gorm"
)

type ListFilter struct {
	Location       string
	EmploymentType string
	ActiveOnly     bool
}

//go:generate mockgen -source=staff_repo.go -destination=mock/staff_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Staff) error
	Update(ctx context.Context, s *Staff) error
	FindByID(ctx context.Context, id string) (*Staff, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Staff, error)
	FindOptions(ctx context.Context, location string) ([]Staff, error)
	CreateHike(ctx context.Context, h *SalaryHike) error
	FindHikes(ctx context.Context, staffID string) ([]SalaryHike, error)
	FindLatestAdvance(ctx context.Context, staffID string) (*AdvanceSnapshot, error)
	CreateOldStaff(ctx context.Context, rec *OldStaffRecord) error
	FindOldStaff(ctx context.Context, location string) ([]OldStaffRecord, error)
	FindOldStaffByID(ctx context.Context, id string) (*OldStaffRecord, error)
	DeleteOldStaff(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, s *Staff) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *Staff) error {
	return r.conn(ctx).Save(s).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Staff, error) {
	var row Staff
	if err := r.conn(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Staff, error) {
	var rows []Staff
	q := r.conn(ctx).Scopes(scope.Location(filter.Location))
	if strings.TrimSpace(filter.EmploymentType) != "" {
		q = q.Where("employment_type = ?", filter.EmploymentType)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindOptions(ctx context.Context, location string) ([]Staff, error) {
	var rows []Staff
	err := r.conn(ctx).
		Select("id", "code", "name", "location").
		Scopes(scope.Location(location)).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateHike(ctx context.Context, h *SalaryHike) error {
	return r.conn(ctx).Create(h).Error
}

func (r *repository) FindHikes(ctx context.Context, staffID string) ([]SalaryHike, error) {
	var rows []SalaryHike
	err := r.conn(ctx).
		Where("staff_id = ?", staffID).
		Order("effective_date DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

// FindLatestAdvance returns nil without error when the staff member has no
// advance history.
func (r *repository) FindLatestAdvance(ctx context.Context, staffID string) (*AdvanceSnapshot, error) {
	var snap AdvanceSnapshot
	err := r.conn(ctx).Raw(`
		SELECT month, year, old_advance, current_advance, deduction, new_advance
		FROM advance_deductions
		WHERE staff_id = ?
		ORDER BY year DESC, month DESC
		LIMIT 1
	`, staffID).Take(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

func (r *repository) CreateOldStaff(ctx context.Context, rec *OldStaffRecord) error {
	return r.conn(ctx).Create(rec).Error
}

func (r *repository) FindOldStaff(ctx context.Context, location string) ([]OldStaffRecord, error) {
	var rows []OldStaffRecord
	err := r.conn(ctx).
		Scopes(scope.Location(location)).
		Order("left_date DESC, name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindOldStaffByID(ctx context.Context, id string) (*OldStaffRecord, error) {
	var row OldStaffRecord
	if err := r.conn(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) DeleteOldStaff(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&OldStaffRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
