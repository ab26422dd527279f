package events

import "time"

const DirectoryLifecycleTopic = "workforce.directory.lifecycle.v1"

const (
	TypeEmployeeCreated  = "employee_created"
	TypeEmployeeDeleted  = "employee_deleted"
	TypeAttendanceMarked = "attendance_marked"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EmployeeDeletedEvent struct {
	EventType         string    `json:"event_type"`
	RequestID         string    `json:"request_id,omitempty"`
	EmployeeID        string    `json:"employee_id"`
	AttendanceRemoved int64     `json:"attendance_removed"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type AttendanceMarkedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RecordID   string    `json:"record_id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
