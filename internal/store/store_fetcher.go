package store

import (
	"context"

	"go-workforce/internal/attendance"
	"go-workforce/internal/employee"
)

//go:generate mockgen -source=store_fetcher.go -destination=mock/store_fetcher_mock.go -package=mock
type Fetcher interface {
	ListEmployees(ctx context.Context) ([]employee.Employee, error)
	ListAttendance(ctx context.Context) ([]attendance.Record, error)
}
