package employee

import "go-workforce/internal/attendance"

type Employee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`

	// Populated by the backend; may lag the top-level attendance collection.
	AttendanceRecords []attendance.Record `json:"attendance_records,omitempty"`
}
