package attendance

import (
	"time"

	"go-staffpay/internal/calendar"

	"github.com/google/uuid"
)

// Metrics is one staff member's attendance for a month.
type Metrics struct {
	PresentDays      int     `json:"present_days"`
	HalfDays         int     `json:"half_days"`
	TotalPresentDays float64 `json:"total_present_days"`
	LeaveDays        int     `json:"leave_days"`
	SundayAbsents    int     `json:"sunday_absents"`
}

// PresentHalves is total presence counted in half days.
func (m Metrics) PresentHalves() int {
	return 2*m.PresentDays + m.HalfDays
}

// Aggregate reduces the staff member's records in the given month to Metrics.
// Unrecorded days count as leave.
func Aggregate(staffID uuid.UUID, records []FullTime, year int, month time.Month) Metrics {
	var m Metrics
	for _, r := range inMonth(staffID, records, year, month) {
		switch r.Status {
		case StatusPresent:
			m.PresentDays++
		case StatusHalfDay:
			m.HalfDays++
		case StatusAbsent:
			if calendar.IsSunday(r.Date) {
				m.SundayAbsents++
			}
		}
	}

	halves := m.PresentHalves()
	m.TotalPresentDays = float64(halves) / 2
	m.LeaveDays = calendar.DaysInMonth(year, month) - halves/2
	if m.LeaveDays < 0 {
		m.LeaveDays = 0
	}
	return m
}

// CountSundayHalfDays counts the staff member's Half Day records on Sundays.
func CountSundayHalfDays(staffID uuid.UUID, records []FullTime, year int, month time.Month) int {
	n := 0
	for _, r := range inMonth(staffID, records, year, month) {
		if r.Status == StatusHalfDay && calendar.IsSunday(r.Date) {
			n++
		}
	}
	return n
}

func inMonth(staffID uuid.UUID, records []FullTime, year int, month time.Month) []FullTime {
	out := make([]FullTime, 0, len(records))
	for _, r := range records {
		if r.StaffID != staffID {
			continue
		}
		if r.Date.Year() != year || r.Date.Month() != month {
			continue
		}
		out = append(out, r)
	}
	return out
}
