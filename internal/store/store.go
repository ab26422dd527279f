// Package store holds the in-memory snapshot of employees and attendance
// records. Each collection is replaced as a whole by a fetch result.
package store

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"go-workforce/internal/attendance"
	"go-workforce/internal/employee"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// collection guards one independently refreshed sequence. A result is applied
// only if no refresh issued after it has been applied already.
type collection[T any] struct {
	mu       sync.RWMutex
	items    []T
	revision uint64
	applied  uint64
	issued   atomic.Uint64
}

func (c *collection[T]) ticket() uint64 {
	return c.issued.Add(1)
}

func (c *collection[T]) replace(ticket uint64, items []T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ticket < c.applied {
		return false
	}
	c.items = items
	c.applied = ticket
	c.revision++
	return true
}

func (c *collection[T]) snapshot() ([]T, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items), c.revision
}

func (c *collection[T]) rev() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.revision
}

type Store struct {
	fetcher    Fetcher
	employees  collection[employee.Employee]
	attendance collection[attendance.Record]
	logger     *zap.Logger
}

func New(fetcher Fetcher, logger ...*zap.Logger) *Store {
	l := zap.L().Named("store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store")
	}
	return &Store{fetcher: fetcher, logger: l}
}

// RefreshEmployees replaces the employee collection. On failure the previous
// snapshot is kept and the error is returned.
func (s *Store) RefreshEmployees(ctx context.Context) error {
	log := contextutil.GetLogger(ctx, s.logger)
	ticket := s.employees.ticket()
	log.Debug("refresh employees", zap.Uint64("ticket", ticket))

	items, err := s.fetcher.ListEmployees(ctx)
	if err != nil {
		log.Warn("refresh employees failed, keeping previous snapshot",
			zap.String("code", apperror.CodeOf(err)),
			zap.Error(err),
		)
		return err
	}
	if items == nil {
		items = []employee.Employee{}
	}

	if !s.employees.replace(ticket, items) {
		log.Debug("discarded superseded employees result", zap.Uint64("ticket", ticket))
		return nil
	}
	log.Info("employees refreshed", zap.Int("count", len(items)))
	return nil
}

// RefreshAttendance replaces the attendance collection, ordered by date
// descending.
func (s *Store) RefreshAttendance(ctx context.Context) error {
	log := contextutil.GetLogger(ctx, s.logger)
	ticket := s.attendance.ticket()
	log.Debug("refresh attendance", zap.Uint64("ticket", ticket))

	records, err := s.fetcher.ListAttendance(ctx)
	if err != nil {
		log.Warn("refresh attendance failed, keeping previous snapshot",
			zap.String("code", apperror.CodeOf(err)),
			zap.Error(err),
		)
		return err
	}
	sorted := attendance.SortByDateDesc(records)

	if !s.attendance.replace(ticket, sorted) {
		log.Debug("discarded superseded attendance result", zap.Uint64("ticket", ticket))
		return nil
	}
	log.Info("attendance refreshed", zap.Int("count", len(sorted)))
	return nil
}

// RefreshAll refreshes both collections concurrently. A failure of one does
// not cancel the other; the first error is returned.
func (s *Store) RefreshAll(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return s.RefreshEmployees(ctx) })
	g.Go(func() error { return s.RefreshAttendance(ctx) })
	return g.Wait()
}

func (s *Store) Employees() []employee.Employee {
	items, _ := s.employees.snapshot()
	return items
}

func (s *Store) Attendance() []attendance.Record {
	items, _ := s.attendance.snapshot()
	return items
}

// EmployeeSnapshot returns a copy of the employees with the revision it was
// taken at. The revision grows on every applied refresh.
func (s *Store) EmployeeSnapshot() ([]employee.Employee, uint64) {
	return s.employees.snapshot()
}

func (s *Store) AttendanceSnapshot() ([]attendance.Record, uint64) {
	return s.attendance.snapshot()
}

func (s *Store) EmployeeRevision() uint64 { return s.employees.rev() }

func (s *Store) AttendanceRevision() uint64 { return s.attendance.rev() }
