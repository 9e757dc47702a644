package payroll

import (
	"time"

	"go-staffpay/internal/attendance"
	"go-staffpay/internal/calendar"
	"go-staffpay/internal/staff"

	"github.com/google/uuid"
)

const (
	fullMonthDays        = 26
	incentiveTierDays    = 25
	sundayAbsentPenalty  = 500
	sundayHalfDayPenalty = 250
)

// SalaryDetail is the recomputed salary of one full-time staff member for a month.
type SalaryDetail struct {
	StaffID          uuid.UUID        `json:"staff_id"`
	StaffCode        string           `json:"staff_code"`
	StaffName        string           `json:"staff_name"`
	Location         string           `json:"location"`
	Year             int              `json:"year"`
	Month            int              `json:"month"`
	PresentDays      int              `json:"present_days"`
	HalfDays         int              `json:"half_days"`
	TotalPresentDays float64          `json:"total_present_days"`
	LeaveDays        int              `json:"leave_days"`
	SundayAbsents    int              `json:"sunday_absents"`
	SundayHalfDays   int              `json:"sunday_half_days"`
	OldAdvance       int64            `json:"old_advance"`
	CurrentAdvance   int64            `json:"current_advance"`
	Deduction        int64            `json:"deduction"`
	NewAdvance       int64            `json:"new_advance"`
	BasicEarned      int64            `json:"basic_earned"`
	IncentiveEarned  int64            `json:"incentive_earned"`
	HRAEarned        int64            `json:"hra_earned"`
	MealAllowance    int64            `json:"meal_allowance"`
	Supplements      map[string]int64 `json:"supplements,omitempty"`
	SundayPenalty    int64            `json:"sunday_penalty"`
	GrossSalary      int64            `json:"gross_salary"`
	NetSalary        int64            `json:"net_salary"`
	Overridden       bool             `json:"overridden"`
}

// Input is everything Calculate needs for one staff member and month.
// Advance is the row recorded for the month itself, nil when none exists.
type Input struct {
	Staff          staff.Staff
	Metrics        attendance.Metrics
	SundayHalfDays int
	Advance        *AdvanceDeduction
	History        []AdvanceDeduction
	Year           int
	Month          time.Month
}

func Calculate(in Input) SalaryDetail {
	s := in.Staff
	m := in.Metrics

	d := SalaryDetail{
		StaffID:          s.ID,
		StaffCode:        s.Code,
		StaffName:        s.Name,
		Location:         s.Location,
		Year:             in.Year,
		Month:            int(in.Month),
		PresentDays:      m.PresentDays,
		HalfDays:         m.HalfDays,
		TotalPresentDays: m.TotalPresentDays,
		LeaveDays:        m.LeaveDays,
		SundayAbsents:    m.SundayAbsents,
		SundayHalfDays:   in.SundayHalfDays,
		MealAllowance:    s.MealAllowance,
		Supplements:      copySupplements(s.SupplementAmounts()),
	}

	d.BasicEarned, d.IncentiveEarned, d.HRAEarned = prorate(s, m.TotalPresentDays)

	if s.SundayPenaltyEnabled {
		d.SundayPenalty = SundayPenalty(m.SundayAbsents, in.SundayHalfDays)
	}

	d.GrossSalary = calendar.Round10(float64(d.BasicEarned + d.IncentiveEarned + d.HRAEarned))

	if in.Advance != nil {
		d.OldAdvance = calendar.Round10(float64(in.Advance.OldAdvance))
		d.CurrentAdvance = calendar.Round10(float64(in.Advance.CurrentAdvance))
		d.Deduction = calendar.Round10(float64(in.Advance.Deduction))
	} else {
		d.OldAdvance = calendar.Round10(float64(CarriedAdvance(s.ID, in.History, in.Year, in.Month)))
	}
	d.NewAdvance = NewAdvanceBalance(d.OldAdvance, d.CurrentAdvance, d.Deduction)

	d.NetSalary = clampZero(calendar.Round10(float64(d.GrossSalary - d.CurrentAdvance - d.Deduction - d.SundayPenalty)))
	return d
}

// prorate applies the 26-day baseline. At 25 days or more only basic is
// reduced; below that incentive is reduced too. HRA is always paid in full.
func prorate(s staff.Staff, totalPresentDays float64) (basic, incentive, hra int64) {
	if totalPresentDays >= fullMonthDays {
		return s.BasicSalary, s.Incentive, s.HRA
	}

	basic = calendar.Round10(float64(s.BasicSalary) / fullMonthDays * totalPresentDays)
	if totalPresentDays >= incentiveTierDays {
		return basic, s.Incentive, s.HRA
	}
	incentive = calendar.Round10(float64(s.Incentive) / fullMonthDays * totalPresentDays)
	return basic, incentive, s.HRA
}

func SundayPenalty(sundayAbsents, sundayHalfDays int) int64 {
	return int64(sundayAbsents)*sundayAbsentPenalty + int64(sundayHalfDays)*sundayHalfDayPenalty
}

// CarriedAdvance is the newAdvance of the staff member's latest row strictly
// before year/month, or 0 when there is none.
func CarriedAdvance(staffID uuid.UUID, history []AdvanceDeduction, year int, month time.Month) int64 {
	var latest *AdvanceDeduction
	for i := range history {
		h := &history[i]
		if h.StaffID != staffID || !h.Before(year, month) {
			continue
		}
		if latest == nil || latest.Before(h.Year, time.Month(h.Month)) {
			latest = h
		}
	}
	if latest == nil {
		return 0
	}
	return latest.NewAdvance
}

func NewAdvanceBalance(oldAdvance, currentAdvance, deduction int64) int64 {
	return calendar.Round10(float64(oldAdvance + currentAdvance - deduction))
}

// ApplyOverride replaces the overridden components and recomputes gross and
// net. Applying the same override again yields the same result.
func ApplyOverride(d SalaryDetail, o *SalaryOverride) SalaryDetail {
	if o == nil || o.IsEmpty() {
		return d
	}

	if o.Basic != nil {
		d.BasicEarned = *o.Basic
	}
	if o.Incentive != nil {
		d.IncentiveEarned = *o.Incentive
	}
	if o.HRA != nil {
		d.HRAEarned = *o.HRA
	}
	if o.MealAllowance != nil {
		d.MealAllowance = *o.MealAllowance
	}
	if o.SundayPenalty != nil {
		d.SundayPenalty = *o.SundayPenalty
	}

	d.GrossSalary = calendar.Round10(float64(d.BasicEarned + d.IncentiveEarned + d.HRAEarned + d.MealAllowance))
	d.NetSalary = clampZero(calendar.Round10(float64(d.GrossSalary - d.Deduction - d.SundayPenalty)))
	d.Overridden = true
	return d
}

func clampZero(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func copySupplements(in map[string]int64) map[string]int64 {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]int64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
