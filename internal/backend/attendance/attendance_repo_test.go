package attendance

import (
	"context"
	"fmt"
	"testing"

	attendanceerrors "go-workforce/internal/backend/attendance/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepoTest(t *testing.T) (*gorm.DB, Repository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE employees (employee_id TEXT PRIMARY KEY)").Error)
	require.NoError(t, db.AutoMigrate(&Record{}))
	require.NoError(t, db.Exec("INSERT INTO employees (employee_id) VALUES ('E1'), ('E2')").Error)

	return db, NewRepository(db)
}

func TestRepository_FindAll_NewestFirst(t *testing.T) {
	_, repo := setupRepoTest(t)
	ctx := context.Background()

	for _, r := range []Record{
		{ID: "a", EmployeeID: "E1", Date: "2024-01-01", Status: StatusPresent},
		{ID: "b", EmployeeID: "E1", Date: "2024-01-03", Status: StatusAbsent},
		{ID: "c", EmployeeID: "E2", Date: "2024-01-02", Status: StatusPresent},
	} {
		r := r
		require.NoError(t, repo.Create(ctx, &r))
	}

	records, err := repo.FindAll(ctx)

	require.NoError(t, err)
	var dates []string
	for _, r := range records {
		dates = append(dates, r.Date)
	}
	assert.Equal(t, []string{"2024-01-03", "2024-01-02", "2024-01-01"}, dates)
}

func TestRepository_DuplicateMark(t *testing.T) {
	_, repo := setupRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Record{ID: "a", EmployeeID: "E1", Date: "2024-01-01", Status: StatusPresent}))
	err := repo.Create(ctx, &Record{ID: "b", EmployeeID: "E1", Date: "2024-01-01", Status: StatusAbsent})

	require.Error(t, err)
	assert.ErrorIs(t, mapRepositoryError(err), attendanceerrors.ErrAttendanceAlreadyMarked)

	// same date for another employee is fine
	assert.NoError(t, repo.Create(ctx, &Record{ID: "c", EmployeeID: "E2", Date: "2024-01-01", Status: StatusAbsent}))
}

func TestRepository_EmployeeExists(t *testing.T) {
	_, repo := setupRepoTest(t)
	ctx := context.Background()

	ok, err := repo.EmployeeExists(ctx, "E1")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.EmployeeExists(ctx, "nobody")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRepository_WithTx_Rollback(t *testing.T) {
	db, repo := setupRepoTest(t)
	ctx := context.Background()

	_ = db.Transaction(func(tx *gorm.DB) error {
		require.NoError(t, repo.WithTx(tx).Create(ctx, &Record{ID: "a", EmployeeID: "E1", Date: "2024-01-01", Status: StatusPresent}))
		return assert.AnError
	})

	records, err := repo.FindAll(ctx)
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestMapRepositoryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"postgres duplicate text", fmt.Errorf(`ERROR: duplicate key value violates unique constraint "uq_attendance_employee_date"`), attendanceerrors.ErrAttendanceAlreadyMarked},
		{"sqlite unique", fmt.Errorf("UNIQUE constraint failed: attendance_records.employee_id, attendance_records.date"), attendanceerrors.ErrAttendanceAlreadyMarked},
		{"unrelated", assert.AnError, assert.AnError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapRepositoryError(tt.err))
		})
	}
}
