package view

import (
	"slices"
	"sync"
	"time"

	"go-workforce/internal/attendance"
	"go-workforce/internal/employee"
)

type employeeKey struct {
	revision uint64
	search   string
}

type statsKey struct {
	revision uint64
	today    string
}

// EmployeeView serves the searchable employee table and the dashboard stats.
type EmployeeView struct {
	src Source
	now func() time.Time

	mu     sync.Mutex
	search string

	// snapshot cache shared by rows and stats
	employees   []employee.Employee
	employeeRev uint64
	loaded      bool

	rows     []EmployeeRow
	rowsKey  employeeKey
	rowsOK   bool
	stats    employee.Stats
	statsKey statsKey
	statsOK  bool
}

// NewEmployeeView builds a view over src. now decides what "today" is for
// stats; nil means time.Now.
func NewEmployeeView(src Source, now func() time.Time) *EmployeeView {
	if now == nil {
		now = time.Now
	}
	return &EmployeeView{src: src, now: now}
}

func (v *EmployeeView) SetSearch(term string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.search = term
}

func (v *EmployeeView) Search() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.search
}

// Rows returns the employees matching the current search term, in store order.
func (v *EmployeeView) Rows() []EmployeeRow {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sync()
	key := employeeKey{revision: v.employeeRev, search: v.search}
	if v.rowsOK && v.rowsKey == key {
		return slices.Clone(v.rows)
	}

	filtered := employee.Filter(v.employees, v.search)
	rows := make([]EmployeeRow, 0, len(filtered))
	for _, e := range filtered {
		rows = append(rows, EmployeeRow{Employee: e, PresentDays: employee.PresentDays(e)})
	}

	v.rows, v.rowsKey, v.rowsOK = rows, key, true
	return slices.Clone(rows)
}

// Stats covers the whole directory regardless of the search term.
func (v *EmployeeView) Stats() employee.Stats {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sync()
	key := statsKey{revision: v.employeeRev, today: attendance.Today(v.now())}
	if v.statsOK && v.statsKey == key {
		return v.stats
	}

	v.stats, v.statsKey, v.statsOK = employee.ComputeStats(v.employees, key.today), key, true
	return v.stats
}

func (v *EmployeeView) sync() {
	if v.loaded && v.src.EmployeeRevision() == v.employeeRev {
		return
	}
	v.employees, v.employeeRev = v.src.EmployeeSnapshot()
	v.loaded = true
}
