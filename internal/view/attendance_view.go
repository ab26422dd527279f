package view

import (
	"slices"
	"sync"

	"go-workforce/internal/attendance"
	"go-workforce/internal/employee"
)

type attendanceKey struct {
	attendanceRev uint64
	employeeRev   uint64
	date          string
	employeeID    string
}

// AttendanceView serves the attendance history filtered by date and employee,
// each row carrying the resolved employee name.
type AttendanceView struct {
	src Source

	mu         sync.Mutex
	date       string
	employeeID string

	records       []attendance.Record
	attendanceRev uint64
	employees     []employee.Employee
	employeeRev   uint64
	loaded        bool

	rows   []AttendanceRow
	key    attendanceKey
	cached bool
}

func NewAttendanceView(src Source) *AttendanceView {
	return &AttendanceView{src: src}
}

// SetDate sets the date filter; "" clears it.
func (v *AttendanceView) SetDate(date string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.date = date
}

// SetEmployee sets the employee filter; "" clears it.
func (v *AttendanceView) SetEmployee(employeeID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.employeeID = employeeID
}

func (v *AttendanceView) Filters() (date, employeeID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.date, v.employeeID
}

// Rows keeps the store order, newest date first.
func (v *AttendanceView) Rows() []AttendanceRow {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sync()
	key := attendanceKey{
		attendanceRev: v.attendanceRev,
		employeeRev:   v.employeeRev,
		date:          v.date,
		employeeID:    v.employeeID,
	}
	if v.cached && v.key == key {
		return slices.Clone(v.rows)
	}

	filtered := attendance.Filter(v.records, v.date, v.employeeID)
	rows := make([]AttendanceRow, 0, len(filtered))
	for _, r := range filtered {
		rows = append(rows, AttendanceRow{Record: r, EmployeeName: employee.ResolveName(v.employees, r.Employee)})
	}

	v.rows, v.key, v.cached = rows, key, true
	return slices.Clone(rows)
}

func (v *AttendanceView) sync() {
	if !v.loaded || v.src.AttendanceRevision() != v.attendanceRev {
		v.records, v.attendanceRev = v.src.AttendanceSnapshot()
	}
	if !v.loaded || v.src.EmployeeRevision() != v.employeeRev {
		v.employees, v.employeeRev = v.src.EmployeeSnapshot()
	}
	v.loaded = true
}
