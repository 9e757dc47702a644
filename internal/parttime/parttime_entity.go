package parttime

import (
	"time"

	"github.com/google/uuid"
)

// AdvanceRecord is one week of the part-time advance ledger for a name and location.
type AdvanceRecord struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StaffName      string    `gorm:"column:staff_name;type:varchar(150);not null"`
	NameKey        string    `gorm:"column:name_key;type:varchar(150);not null;uniqueIndex:uq_pt_advance_week,priority:1"`
	Location       string    `gorm:"column:location;type:varchar(100);not null;uniqueIndex:uq_pt_advance_week,priority:2"`
	Year           int       `gorm:"column:year;not null;uniqueIndex:uq_pt_advance_week,priority:3"`
	Month          int       `gorm:"column:month;not null;uniqueIndex:uq_pt_advance_week,priority:4"`
	WeekNumber     int       `gorm:"column:week_number;not null;uniqueIndex:uq_pt_advance_week,priority:5"`
	OpeningBalance int64     `gorm:"column:opening_balance;not null;default:0"`
	AdvanceGiven   int64     `gorm:"column:advance_given;not null;default:0"`
	Earnings       int64     `gorm:"column:earnings;not null;default:0"`
	Adjustment     int64     `gorm:"column:adjustment;not null;default:0"`
	ClosingBalance int64     `gorm:"column:closing_balance;not null;default:0"`
	PendingSalary  int64     `gorm:"column:pending_salary;not null;default:0"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (AdvanceRecord) TableName() string {
	return "part_time_advance_records"
}

// Before reports whether the record's week is strictly earlier than the given week.
func (r AdvanceRecord) Before(year int, month time.Month, week int) bool {
	if r.Year != year {
		return r.Year < year
	}
	if r.Month != int(month) {
		return r.Month < int(month)
	}
	return r.WeekNumber < week
}

// Settlement marks one weekly key as paid.
type Settlement struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StaffName     string    `gorm:"column:staff_name;type:varchar(150);not null"`
	NameKey       string    `gorm:"column:name_key;type:varchar(150);not null;uniqueIndex:uq_pt_settlement_key,priority:1"`
	Location      string    `gorm:"column:location;type:varchar(100);not null;uniqueIndex:uq_pt_settlement_key,priority:2"`
	SettlementKey string    `gorm:"column:settlement_key;type:varchar(20);not null;uniqueIndex:uq_pt_settlement_key,priority:3"`
	Settled       bool      `gorm:"column:settled;not null;default:false"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (Settlement) TableName() string {
	return "part_time_settlements"
}
