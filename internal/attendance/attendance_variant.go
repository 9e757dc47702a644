package attendance

import (
	"strings"
	"time"

	"go-staffpay/internal/calendar"
	"go-staffpay/internal/config"
	"go-staffpay/internal/shared/scope"

	"github.com/google/uuid"
)

// Common holds the fields shared by both attendance variants.
type Common struct {
	ID     uuid.UUID
	Date   time.Time
	Status string
	Shift  string
}

// FullTime is an observation for a staff member with a stable id.
type FullTime struct {
	Common
	StaffID          uuid.UUID
	LocationOverride string
}

// PartTime is an observation for a name-keyed part-time worker.
type PartTime struct {
	Common
	StaffName      string
	Location       string
	Salary         *int64
	SalaryOverride bool
	ArrivalTime    string
	LeavingTime    string
}

func (p PartTime) NameKey() string {
	return scope.NormalizeName(p.StaffName)
}

func (a Attendance) common() Common {
	return Common{
		ID:     a.ID,
		Date:   calendar.DateOnly(a.AttendanceDate),
		Status: a.Status,
		Shift:  deref(a.Shift),
	}
}

// FullTime returns the row as a full-time record; ok is false for part-time rows.
func (a Attendance) FullTime() (FullTime, bool) {
	if a.IsPartTime || a.StaffID == nil {
		return FullTime{}, false
	}
	return FullTime{
		Common:           a.common(),
		StaffID:          *a.StaffID,
		LocationOverride: deref(a.LocationOverride),
	}, true
}

// PartTime returns the row as a part-time record; ok is false for full-time rows.
func (a Attendance) PartTime() (PartTime, bool) {
	if !a.IsPartTime {
		return PartTime{}, false
	}
	return PartTime{
		Common:         a.common(),
		StaffName:      deref(a.StaffName),
		Location:       deref(a.Location),
		Salary:         a.Salary,
		SalaryOverride: a.SalaryOverride,
		ArrivalTime:    deref(a.ArrivalTime),
		LeavingTime:    deref(a.LeavingTime),
	}, true
}

// Split separates persisted rows into the two variants, dropping malformed rows.
func Split(rows []Attendance) ([]FullTime, []PartTime) {
	var full []FullTime
	var part []PartTime
	for _, row := range rows {
		if ft, ok := row.FullTime(); ok {
			full = append(full, ft)
			continue
		}
		if pt, ok := row.PartTime(); ok {
			part = append(part, pt)
		}
	}
	return full, part
}

func newFullTimeRow(r FullTime) Attendance {
	staffID := r.StaffID
	return Attendance{
		ID:               r.ID,
		AttendanceDate:   calendar.DateOnly(r.Date),
		Status:           r.Status,
		AttendanceValue:  ValueForStatus(r.Status),
		Shift:            ptr(r.Shift),
		StaffID:          &staffID,
		LocationOverride: ptr(r.LocationOverride),
	}
}

func newPartTimeRow(r PartTime) Attendance {
	key := r.NameKey()
	name := strings.TrimSpace(r.StaffName)
	location := strings.TrimSpace(r.Location)
	return Attendance{
		ID:              r.ID,
		AttendanceDate:  calendar.DateOnly(r.Date),
		Status:          r.Status,
		AttendanceValue: ValueForStatus(r.Status),
		Shift:           ptr(r.Shift),
		IsPartTime:      true,
		StaffName:       &name,
		NameKey:         &key,
		Location:        &location,
		Salary:          r.Salary,
		SalaryOverride:  r.SalaryOverride,
		ArrivalTime:     ptr(r.ArrivalTime),
		LeavingTime:     ptr(r.LeavingTime),
	}
}

// DefaultPartTimePay is the daily rate for date, halved for a single shift.
func DefaultPartTimePay(date time.Time, shift string, policy config.PayPolicy) int64 {
	rate := policy.WeekdayRate
	if calendar.IsSunday(date) {
		rate = policy.SundayRate
	}
	if shift == ShiftMorning || shift == ShiftEvening {
		return (rate + 1) / 2
	}
	return rate
}

// ResolvedPay is the stored salary when present, otherwise the default pay.
func (p PartTime) ResolvedPay(policy config.PayPolicy) int64 {
	if p.Salary != nil {
		return *p.Salary
	}
	return DefaultPartTimePay(p.Date, p.Shift, policy)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
