package events

import "time"

const AdvanceTopic = "hr.payroll.advance.v1"

const (
	EventFullTimeAdvanceRecorded = "full_time_advance_recorded"
	EventPartTimeAdvanceRecorded = "part_time_advance_recorded"
	EventPartTimeSettlement      = "part_time_settlement_toggled"
)

// AdvanceRecordedEvent covers both ledgers; StaffID is empty for part-time
// staff, who are keyed by name and location.
type AdvanceRecordedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	StaffID        string    `json:"staff_id,omitempty"`
	StaffName      string    `json:"staff_name,omitempty"`
	Location       string    `json:"location,omitempty"`
	Year           int       `json:"year"`
	Month          int       `json:"month"`
	WeekNumber     *int      `json:"week_number,omitempty"`
	OpeningBalance int64     `json:"opening_balance"`
	Advance        int64     `json:"advance"`
	Deduction      int64     `json:"deduction,omitempty"`
	Earnings       int64     `json:"earnings,omitempty"`
	ClosingBalance int64     `json:"closing_balance"`
	PendingSalary  int64     `json:"pending_salary,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type SettlementToggledEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	StaffName  string    `json:"staff_name"`
	Location   string    `json:"location"`
	Keys       []string  `json:"keys"`
	Settled    bool      `json:"settled"`
	OccurredAt time.Time `json:"occurred_at"`
}
