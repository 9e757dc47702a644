package parttime

import "time"

// Balance is the outcome of settling one week of the ledger.
type Balance struct {
	Adjustment     int64 `json:"adjustment"`
	ClosingBalance int64 `json:"closing_balance"`
	PendingSalary  int64 `json:"pending_salary"`
}

// Reconcile settles a week using only its own opening balance. Earnings repay
// the debt first and any surplus is owed to the worker.
func Reconcile(opening, advance, earnings int64) Balance {
	totalDebt := opening + advance
	remaining := totalDebt - earnings
	if remaining > 0 {
		return Balance{Adjustment: earnings, ClosingBalance: remaining}
	}
	return Balance{Adjustment: totalDebt, PendingSalary: -remaining}
}

// OpeningBalance is the closing balance of the latest record strictly before
// the given week, skipping weeks and months without activity. It is 0 when
// no earlier record exists.
func OpeningBalance(history []AdvanceRecord, year int, month time.Month, week int) int64 {
	var latest *AdvanceRecord
	for i := range history {
		r := &history[i]
		if !r.Before(year, month, week) {
			continue
		}
		if latest == nil || latest.Before(r.Year, time.Month(r.Month), r.WeekNumber) {
			latest = r
		}
	}
	if latest == nil {
		return 0
	}
	return latest.ClosingBalance
}
