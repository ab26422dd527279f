package employee

import (
	"errors"
	"strings"

	employeeerrors "go-workforce/internal/backend/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	constraintPrimaryKey  = "employees_pkey"
	constraintUniqueEmail = "uq_employee_email"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case constraintPrimaryKey:
				return employeeerrors.ErrEmployeeIDAlreadyExists
			case constraintUniqueEmail:
				return employeeerrors.ErrEmployeeEmailAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintUniqueEmail):
		return employeeerrors.ErrEmployeeEmailAlreadyExists
	case strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintPrimaryKey):
		return employeeerrors.ErrEmployeeIDAlreadyExists
	// sqlite names the column instead of the constraint
	case strings.Contains(errMsg, "unique constraint failed: employees.email"):
		return employeeerrors.ErrEmployeeEmailAlreadyExists
	case strings.Contains(errMsg, "unique constraint failed: employees.employee_id"):
		return employeeerrors.ErrEmployeeIDAlreadyExists
	}

	return err
}
