package staff

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	EmploymentFullTime = "full_time"
	EmploymentPartTime = "part_time"

	DefaultSalaryCalculationDays = 26
)

// Supplements maps a salary category id to a monthly amount.
type Supplements = datatypes.JSONType[map[string]int64]

type Staff struct {
	ID                    uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	Code                  string      `gorm:"column:code;type:varchar(20);uniqueIndex:uq_staff_code"`
	Name                  string      `gorm:"column:name;type:varchar(150);not null"`
	Phone                 string      `gorm:"column:phone;type:varchar(30);not null"`
	Location              string      `gorm:"column:location;type:varchar(100);not null;index"`
	EmploymentType        string      `gorm:"column:employment_type;type:varchar(20);not null"`
	IsActive              bool        `gorm:"column:is_active;not null;index"`
	JoinedDate            time.Time   `gorm:"column:joined_date;type:date;not null"`
	BasicSalary           int64       `gorm:"column:basic_salary;not null;default:0"`
	Incentive             int64       `gorm:"column:incentive;not null;default:0"`
	HRA                   int64       `gorm:"column:hra;not null;default:0"`
	MealAllowance         int64       `gorm:"column:meal_allowance;not null;default:0"`
	Supplements           Supplements `gorm:"column:supplements"`
	SundayPenaltyEnabled  bool        `gorm:"column:sunday_penalty_enabled;not null"`
	// Informational only; salary pro-ration always uses the 26 day baseline.
	SalaryCalculationDays int         `gorm:"column:salary_calculation_days;not null;default:26"`
	CreatedAt             time.Time   `gorm:"column:created_at"`
	UpdatedAt             time.Time   `gorm:"column:updated_at"`
}

func (Staff) TableName() string {
	return "staff"
}

func (s Staff) SupplementAmounts() map[string]int64 {
	return s.Supplements.Data()
}

// TotalSalary is always derived from the components, never stored.
func (s Staff) TotalSalary() int64 {
	total := s.BasicSalary + s.Incentive + s.HRA + s.MealAllowance
	for _, amount := range s.SupplementAmounts() {
		total += amount
	}
	return total
}

// SalaryHike records a change of basic salary.
type SalaryHike struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StaffID       uuid.UUID `gorm:"column:staff_id;type:uuid;not null;index"`
	PreviousBasic int64     `gorm:"column:previous_basic;not null"`
	NewBasic      int64     `gorm:"column:new_basic;not null"`
	EffectiveDate time.Time `gorm:"column:effective_date;type:date;not null"`
	Reason        string    `gorm:"column:reason;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (SalaryHike) TableName() string {
	return "salary_hikes"
}

// OldStaffRecord is the frozen state of a staff member at departure.
type OldStaffRecord struct {
	ID                    uuid.UUID   `gorm:"column:id;type:uuid;primaryKey"`
	StaffID               uuid.UUID   `gorm:"column:staff_id;type:uuid;not null;index"`
	Code                  string      `gorm:"column:code;type:varchar(20)"`
	Name                  string      `gorm:"column:name;type:varchar(150);not null"`
	Phone                 string      `gorm:"column:phone;type:varchar(30)"`
	Location              string      `gorm:"column:location;type:varchar(100)"`
	EmploymentType        string      `gorm:"column:employment_type;type:varchar(20)"`
	JoinedDate            time.Time   `gorm:"column:joined_date;type:date"`
	LeftDate              time.Time   `gorm:"column:left_date;type:date"`
	Experience            string      `gorm:"column:experience;type:varchar(20)"`
	BasicSalary           int64       `gorm:"column:basic_salary"`
	Incentive             int64       `gorm:"column:incentive"`
	HRA                   int64       `gorm:"column:hra"`
	MealAllowance         int64       `gorm:"column:meal_allowance"`
	Supplements           Supplements `gorm:"column:supplements"`
	TotalSalary           int64       `gorm:"column:total_salary"`
	SundayPenaltyEnabled  bool        `gorm:"column:sunday_penalty_enabled"`
	SalaryCalculationDays int         `gorm:"column:salary_calculation_days"`
	LastAdvanceMonth      *int        `gorm:"column:last_advance_month"`
	LastAdvanceYear       *int        `gorm:"column:last_advance_year"`
	LastOldAdvance        int64       `gorm:"column:last_old_advance"`
	LastCurrentAdvance    int64       `gorm:"column:last_current_advance"`
	LastDeduction         int64       `gorm:"column:last_deduction"`
	LastNewAdvance        int64       `gorm:"column:last_new_advance"`
	LeaveReason           string      `gorm:"column:leave_reason;type:text;not null"`
	CreatedAt             time.Time   `gorm:"column:created_at"`
}

func (OldStaffRecord) TableName() string {
	return "old_staff_records"
}

// AdvanceSnapshot is the latest advance_deductions row of a staff member.
type AdvanceSnapshot struct {
	Month          int   `gorm:"column:month"`
	Year           int   `gorm:"column:year"`
	OldAdvance     int64 `gorm:"column:old_advance"`
	CurrentAdvance int64 `gorm:"column:current_advance"`
	Deduction      int64 `gorm:"column:deduction"`
	NewAdvance     int64 `gorm:"column:new_advance"`
}
