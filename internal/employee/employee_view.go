package employee

import (
	"math"
	"strings"

	"go-workforce/internal/attendance"
)

// UnknownName stands in for attendance rows whose employee is not in the snapshot.
const UnknownName = "Unknown"

type Stats struct {
	TotalEmployees  int `json:"total_employees"`
	DepartmentCount int `json:"department_count"`
	PresentToday    int `json:"present_today"`
	AttendanceRate  int `json:"attendance_rate"`
}

// Filter matches searchTerm case-insensitively against full name or employee id.
// An empty term returns employees unchanged.
func Filter(employees []Employee, searchTerm string) []Employee {
	if searchTerm == "" {
		return employees
	}

	q := strings.ToLower(searchTerm)
	out := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.FullName), q) || strings.Contains(strings.ToLower(e.EmployeeID), q) {
			out = append(out, e)
		}
	}
	return out
}

// ComputeStats derives the dashboard numbers. today is a DateLayout date.
// The rate is 0 for an empty directory.
func ComputeStats(employees []Employee, today string) Stats {
	departments := make(map[string]struct{}, len(employees))
	present := 0
	for _, e := range employees {
		departments[e.Department] = struct{}{}
		if presentOn(e, today) {
			present++
		}
	}

	stats := Stats{
		TotalEmployees:  len(employees),
		DepartmentCount: len(departments),
		PresentToday:    present,
	}
	if stats.TotalEmployees > 0 {
		stats.AttendanceRate = int(math.Round(100 * float64(present) / float64(stats.TotalEmployees)))
	}
	return stats
}

// ResolveName returns the full name for employeeID, or UnknownName.
func ResolveName(employees []Employee, employeeID string) string {
	for _, e := range employees {
		if e.EmployeeID == employeeID {
			return e.FullName
		}
	}
	return UnknownName
}

// PresentDays counts the employee's nested records marked Present.
func PresentDays(e Employee) int {
	n := 0
	for _, r := range e.AttendanceRecords {
		if r.Status == attendance.StatusPresent {
			n++
		}
	}
	return n
}

func presentOn(e Employee, date string) bool {
	for _, r := range e.AttendanceRecords {
		if r.Date == date && r.Status == attendance.StatusPresent {
			return true
		}
	}
	return false
}
