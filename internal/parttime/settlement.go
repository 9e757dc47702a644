package parttime

import (
	"fmt"
	"time"

	"go-staffpay/internal/calendar"
)

// SettlementKey names a ledger week; week is the 0-based WeeksInMonth index
// and is written 1-based.
func SettlementKey(year int, month time.Month, week int) string {
	return fmt.Sprintf("%04d-%02d-W%d", year, int(month), week+1)
}

func KeysForMonth(year int, month time.Month) []string {
	weeks := calendar.WeeksInMonth(year, month)
	keys := make([]string, 0, len(weeks))
	for i := range weeks {
		keys = append(keys, SettlementKey(year, month, i))
	}
	return keys
}

// KeysForRange returns the keys of every ledger week overlapping [from, to],
// including a spilled final week of the month before from.
func KeysForRange(from, to time.Time) []string {
	from, to = calendar.DateOnly(from), calendar.DateOnly(to)
	if to.Before(from) {
		return nil
	}

	var keys []string
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	for !cursor.After(to) {
		for i, w := range calendar.WeeksInMonth(cursor.Year(), cursor.Month()) {
			if w.Overlaps(from, to) {
				keys = append(keys, SettlementKey(cursor.Year(), cursor.Month(), i))
			}
		}
		cursor = cursor.AddDate(0, 1, 0)
	}
	return keys
}

// SettlementKeys lists the weekly keys a period covers.
func (p Period) SettlementKeys() []string {
	switch p.Kind {
	case PeriodWeek:
		return []string{SettlementKey(p.Year, p.Month, p.Week)}
	case PeriodRange:
		return KeysForRange(p.From, p.To)
	default:
		return KeysForMonth(p.Year, p.Month)
	}
}

type SettlementStatus struct {
	Keys             []string `json:"keys"`
	SettledKeys      []string `json:"settled_keys"`
	FullySettled     bool     `json:"fully_settled"`
	PartiallySettled bool     `json:"partially_settled"`
}

// StatusOf aggregates weekly flags: fully settled needs every key settled
// and at least one key, partially settled is some but not all.
func StatusOf(keys []string, settled map[string]bool) SettlementStatus {
	status := SettlementStatus{Keys: keys, SettledKeys: []string{}}
	for _, k := range keys {
		if settled[k] {
			status.SettledKeys = append(status.SettledKeys, k)
		}
	}
	n := len(status.SettledKeys)
	status.FullySettled = len(keys) > 0 && n == len(keys)
	status.PartiallySettled = n > 0 && n < len(keys)
	return status
}

// ToggleTarget is the state every key is set to by a toggle.
func (s SettlementStatus) ToggleTarget() bool {
	return !s.FullySettled
}
