package events

import "time"

const StaffLifecycleTopic = "hr.staff.lifecycle.v1"

const (
	EventStaffArchived = "staff_archived"
	EventStaffRejoined = "staff_rejoined"
)

type StaffLifecycleEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	StaffID     string    `json:"staff_id"`
	StaffName   string    `json:"staff_name"`
	Location    string    `json:"location"`
	LeaveReason string    `json:"leave_reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
