// Package view recomputes derived views whenever the store revision or a
// filter changes, and serves the cached result otherwise.
package view

import (
	"go-workforce/internal/attendance"
	"go-workforce/internal/employee"
)

// Source is the read side of the store.
type Source interface {
	EmployeeRevision() uint64
	AttendanceRevision() uint64
	EmployeeSnapshot() ([]employee.Employee, uint64)
	AttendanceSnapshot() ([]attendance.Record, uint64)
}

type EmployeeRow struct {
	employee.Employee
	PresentDays int `json:"present_days"`
}

type AttendanceRow struct {
	attendance.Record
	EmployeeName string `json:"employee_name"`
}
