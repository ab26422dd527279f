package employee

import (
	"strings"

	"go-workforce/internal/backend/attendance"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=64"`
	FullName   string `json:"full_name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Department string `json:"department" binding:"required,max=128"`
}

// Normalize trims every field so whitespace-only input fails "required".
func (r CreateEmployeeRequest) Normalize() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeID: strings.TrimSpace(r.EmployeeID),
		FullName:   strings.TrimSpace(r.FullName),
		Email:      strings.TrimSpace(r.Email),
		Department: strings.TrimSpace(r.Department),
	}
}

type EmployeeResponse struct {
	EmployeeID        string                      `json:"employee_id"`
	FullName          string                      `json:"full_name"`
	Email             string                      `json:"email"`
	Department        string                      `json:"department"`
	AttendanceRecords []attendance.RecordResponse `json:"attendance_records"`
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:        empl.EmployeeID,
		FullName:          empl.FullName,
		Email:             empl.Email,
		Department:        empl.Department,
		AttendanceRecords: attendance.MapToListResponse(empl.AttendanceRecords),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
