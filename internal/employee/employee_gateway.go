package employee

import "context"

//go:generate mockgen -source=employee_gateway.go -destination=mock/employee_gateway_mock.go -package=mock
type Gateway interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}

type Refresher interface {
	RefreshEmployees(ctx context.Context) error
}
