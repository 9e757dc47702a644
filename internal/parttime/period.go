package parttime

import (
	"time"

	"go-staffpay/internal/calendar"
	parttimeerrors "go-staffpay/internal/parttime/errors"
)

const (
	PeriodMonth = "month"
	PeriodWeek  = "week"
	PeriodRange = "range"
)

// Period selects the days a calculation covers. Week is the 0-based index
// into calendar.WeeksInMonth for Year/Month.
type Period struct {
	Kind  string
	Year  int
	Month time.Month
	Week  int
	From  time.Time
	To    time.Time
}

func MonthPeriod(year int, month time.Month) Period {
	return Period{Kind: PeriodMonth, Year: year, Month: month}
}

func WeekPeriod(year int, month time.Month, week int) Period {
	return Period{Kind: PeriodWeek, Year: year, Month: month, Week: week}
}

func RangePeriod(from, to time.Time) Period {
	return Period{Kind: PeriodRange, From: calendar.DateOnly(from), To: calendar.DateOnly(to)}
}

func (p Period) Validate() error {
	switch p.Kind {
	case PeriodMonth, PeriodWeek:
		if p.Year <= 0 || p.Month < time.January || p.Month > time.December {
			return parttimeerrors.ErrInvalidPeriod
		}
		if p.Kind == PeriodWeek && (p.Week < 0 || p.Week >= len(calendar.WeeksInMonth(p.Year, p.Month))) {
			return parttimeerrors.ErrInvalidWeek
		}
		return nil
	case PeriodRange:
		if p.From.IsZero() || p.To.IsZero() {
			return parttimeerrors.ErrInvalidDate
		}
		if p.To.Before(p.From) {
			return parttimeerrors.ErrInvalidDateRange
		}
		return nil
	default:
		return parttimeerrors.ErrInvalidPeriodKind
	}
}

// Bounds returns the inclusive first and last day of a valid period.
func (p Period) Bounds() (time.Time, time.Time) {
	switch p.Kind {
	case PeriodWeek:
		w := calendar.WeeksInMonth(p.Year, p.Month)[p.Week]
		return w.Start, w.End
	case PeriodRange:
		return p.From, p.To
	default:
		return calendar.MonthRange(p.Year, p.Month)
	}
}
