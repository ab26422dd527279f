package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-workforce/internal/backend/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueEmployeeDate = "uq_attendance_employee_date"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == uniqueEmployeeDate {
				return attendanceerrors.ErrAttendanceAlreadyMarked
			}
		case "23503":
			return attendanceerrors.ErrEmployeeNotFound
		}
	}

	// sqlite reports the columns instead of the index name
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "unique constraint failed") &&
		strings.Contains(errMsg, "attendance_records.employee_id") &&
		strings.Contains(errMsg, "attendance_records.date") {
		return attendanceerrors.ErrAttendanceAlreadyMarked
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, uniqueEmployeeDate) {
		return attendanceerrors.ErrAttendanceAlreadyMarked
	}

	return err
}
