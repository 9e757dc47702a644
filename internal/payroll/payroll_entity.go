package payroll

import (
	"time"

	"github.com/google/uuid"
)

// AdvanceDeduction is the advance ledger row of one staff member for a month.
type AdvanceDeduction struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StaffID        uuid.UUID `gorm:"column:staff_id;type:uuid;not null;uniqueIndex:uq_advance_staff_period,priority:1"`
	Month          int       `gorm:"column:month;not null;uniqueIndex:uq_advance_staff_period,priority:2"`
	Year           int       `gorm:"column:year;not null;uniqueIndex:uq_advance_staff_period,priority:3"`
	OldAdvance     int64     `gorm:"column:old_advance;not null;default:0"`
	CurrentAdvance int64     `gorm:"column:current_advance;not null;default:0"`
	Deduction      int64     `gorm:"column:deduction;not null;default:0"`
	NewAdvance     int64     `gorm:"column:new_advance;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (AdvanceDeduction) TableName() string {
	return "advance_deductions"
}

// Before reports whether the row's period is strictly earlier than year/month.
func (a AdvanceDeduction) Before(year int, month time.Month) bool {
	if a.Year != year {
		return a.Year < year
	}
	return a.Month < int(month)
}

// SalaryOverride replaces computed components; a nil field keeps the computed value.
type SalaryOverride struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StaffID       uuid.UUID `gorm:"column:staff_id;type:uuid;not null;uniqueIndex:uq_override_staff_period,priority:1"`
	Month         int       `gorm:"column:month;not null;uniqueIndex:uq_override_staff_period,priority:2"`
	Year          int       `gorm:"column:year;not null;uniqueIndex:uq_override_staff_period,priority:3"`
	Basic         *int64    `gorm:"column:basic"`
	Incentive     *int64    `gorm:"column:incentive"`
	HRA           *int64    `gorm:"column:hra"`
	MealAllowance *int64    `gorm:"column:meal_allowance"`
	SundayPenalty *int64    `gorm:"column:sunday_penalty"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (SalaryOverride) TableName() string {
	return "salary_overrides"
}

func (o SalaryOverride) IsEmpty() bool {
	return o.Basic == nil && o.Incentive == nil && o.HRA == nil &&
		o.MealAllowance == nil && o.SundayPenalty == nil
}
