// Package calendar holds the date helpers shared by the payroll calculators.
//
// Pay weeks are consecutive 7-day windows anchored on day 1 of the month, so
// the last window of most months spills into the following month.
package calendar

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// Week is an inclusive [Start, End] window of calendar days.
type Week struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Contains reports whether the calendar day of t falls inside the window.
func (w Week) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Overlaps reports whether the window shares at least one day with [from, to].
func (w Week) Overlaps(from, to time.Time) bool {
	return !w.End.Before(DateOnly(from)) && !w.Start.After(DateOnly(to))
}

func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

func DaysInMonth(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last calendar day of the month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month, DaysInMonth(year, month), 0, 0, 0, 0, time.UTC)
	return first, last
}

// WeeksInMonth partitions a month into 7-day windows starting on day 1.
// The final window always runs a full 7 days and may end in the next month.
func WeeksInMonth(year int, month time.Month) []Week {
	days := DaysInMonth(year, month)
	weeks := make([]Week, 0, 5)
	for start := 1; start <= days; start += 7 {
		s := time.Date(year, month, start, 0, 0, 0, 0, time.UTC)
		weeks = append(weeks, Week{Start: s, End: s.AddDate(0, 0, 6)})
	}
	return weeks
}

// DisplayWeekIndex is the 1-based ceil(day/7) bucket used for earnings display.
func DisplayWeekIndex(t time.Time) int {
	return (t.Day() + 6) / 7
}

// ExperienceLabel formats the elapsed time between joined and now as "Xy Ym".
func ExperienceLabel(joined, now time.Time) string {
	if joined.IsZero() || now.Before(joined) {
		return "0y 0m"
	}
	months := (now.Year()-joined.Year())*12 + int(now.Month()-joined.Month())
	if now.Day() < joined.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return fmt.Sprintf("%dy %dm", months/12, months%12)
}

// Round10 rounds to the nearest multiple of 10, halves rounding up.
func Round10(x float64) int64 {
	return int64(math.Floor(x/10+0.5)) * 10
}
