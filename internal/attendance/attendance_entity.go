package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusHalfDay = "Half Day"
	StatusAbsent  = "Absent"

	ShiftMorning = "Morning"
	ShiftEvening = "Evening"
	ShiftBoth    = "Both"
)

// Attendance is the persisted row. Full-time and part-time observations share
// the table; use FullTime/PartTime to read a row as its variant.
type Attendance struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	AttendanceDate   time.Time  `gorm:"column:attendance_date;type:date;not null;index;uniqueIndex:uq_attendance_staff_date,priority:2"`
	Status           string     `gorm:"column:status;type:varchar(20);not null"`
	AttendanceValue  float64    `gorm:"column:attendance_value;not null;default:0"`
	Shift            *string    `gorm:"column:shift;type:varchar(10)"`
	IsPartTime       bool       `gorm:"column:is_part_time;not null;default:false;index"`
	StaffID          *uuid.UUID `gorm:"column:staff_id;type:uuid;uniqueIndex:uq_attendance_staff_date,priority:1"`
	LocationOverride *string    `gorm:"column:location_override;type:varchar(100)"`
	StaffName        *string    `gorm:"column:staff_name;type:varchar(150)"`
	NameKey          *string    `gorm:"column:name_key;type:varchar(150);index"`
	Location         *string    `gorm:"column:location;type:varchar(100)"`
	Salary           *int64     `gorm:"column:salary"`
	SalaryOverride   bool       `gorm:"column:salary_override;not null;default:false"`
	ArrivalTime      *string    `gorm:"column:arrival_time;type:varchar(20)"`
	LeavingTime      *string    `gorm:"column:leaving_time;type:varchar(20)"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (Attendance) TableName() string {
	return "attendances"
}

// StaffRef is the slice of the staff table attendance needs.
type StaffRef struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name           string    `gorm:"column:name"`
	Location       string    `gorm:"column:location"`
	EmploymentType string    `gorm:"column:employment_type"`
	IsActive       bool      `gorm:"column:is_active"`
}

func (StaffRef) TableName() string {
	return "staff"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPresent, StatusHalfDay, StatusAbsent:
		return true
	}
	return false
}

func ValidShift(shift string) bool {
	switch shift {
	case ShiftMorning, ShiftEvening, ShiftBoth:
		return true
	}
	return false
}

// ValueForStatus is the informational attendanceValue derived from status.
func ValueForStatus(status string) float64 {
	switch status {
	case StatusPresent:
		return 1
	case StatusHalfDay:
		return 0.5
	default:
		return 0
	}
}
