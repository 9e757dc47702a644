package parttime

import (
	"strings"
	"time"

	"go-staffpay/internal/calendar"
	parttimeerrors "go-staffpay/internal/parttime/errors"
)

// PeriodRequest selects a month (default), a ledger week or a date range.
type PeriodRequest struct {
	Period string `form:"period" json:"period" binding:"omitempty,oneof=month week range"`
	Year   int    `form:"year" json:"year"`
	Month  int    `form:"month" json:"month"`
	Week   int    `form:"week" json:"week" binding:"min=0"`
	From   string `form:"from" json:"from"`
	To     string `form:"to" json:"to"`
}

func (r PeriodRequest) toPeriod() (Period, error) {
	var p Period
	switch strings.TrimSpace(r.Period) {
	case "", PeriodMonth:
		p = MonthPeriod(r.Year, time.Month(r.Month))
	case PeriodWeek:
		p = WeekPeriod(r.Year, time.Month(r.Month), r.Week)
	case PeriodRange:
		from, err := calendar.ParseDate(r.From)
		if err != nil {
			return Period{}, parttimeerrors.ErrInvalidDate
		}
		to, err := calendar.ParseDate(r.To)
		if err != nil {
			return Period{}, parttimeerrors.ErrInvalidDate
		}
		p = RangePeriod(from, to)
	default:
		return Period{}, parttimeerrors.ErrInvalidPeriodKind
	}
	return p, p.Validate()
}

type EarningsRequest struct {
	PeriodRequest
	StaffName string `form:"name" json:"staff_name" binding:"required"`
	Location  string `form:"location" json:"location"`
}

type UpsertAdvanceRequest struct {
	StaffName      string `json:"staff_name" binding:"required"`
	Location       string `json:"location" binding:"required"`
	Year           int    `json:"year" binding:"required,min=1"`
	Month          int    `json:"month" binding:"required,min=1,max=12"`
	WeekNumber     int    `json:"week_number" binding:"min=0,max=4"`
	AdvanceGiven   int64  `json:"advance_given" binding:"min=0"`
	OpeningBalance *int64 `json:"opening_balance" binding:"omitempty,min=0"`
}

type ListAdvancesRequest struct {
	StaffName string `form:"name"`
	Location  string `form:"location"`
	From      string `form:"from"`
	To        string `form:"to"`
}

type AdvanceRecordResponse struct {
	ID             string `json:"id"`
	StaffName      string `json:"staff_name"`
	Location       string `json:"location"`
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	WeekNumber     int    `json:"week_number"`
	WeekStart      string `json:"week_start"`
	WeekEnd        string `json:"week_end"`
	OpeningBalance int64  `json:"opening_balance"`
	AdvanceGiven   int64  `json:"advance_given"`
	Earnings       int64  `json:"earnings"`
	Balance
}

type SettlementRequest struct {
	PeriodRequest
	StaffName string `form:"name" json:"staff_name" binding:"required"`
	Location  string `form:"location" json:"location" binding:"required"`
}

type SettlementResponse struct {
	StaffName string `json:"staff_name"`
	Location  string `json:"location"`
	SettlementStatus
}
