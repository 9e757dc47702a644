package events

import (
	"encoding/json"
	"time"
)

const (
	PayrollSlipRequestedTopic = "hr.payroll.slip.requested.v1"
	PayrollSlipReadyTopic     = "hr.payroll.slip.ready.v1"

	EventSlipRequested = "payroll_slip_requested"
	EventSlipReady     = "payroll_slip_ready"
)

// SlipRequestedEvent asks for slips of one month; empty StaffIDs means every
// active full-time staff member, optionally limited to Location.
type SlipRequestedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Location   string    `json:"location,omitempty"`
	StaffIDs   []string  `json:"staff_ids,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// SlipReadyEvent carries one finished salary detail for the reporting side.
type SlipReadyEvent struct {
	EventType  string          `json:"event_type"`
	RequestID  string          `json:"request_id,omitempty"`
	StaffID    string          `json:"staff_id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Detail     json.RawMessage `json:"detail"`
	OccurredAt time.Time       `json:"occurred_at"`
}
