package employee

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go-workforce/internal/backend/attendance"
	employeeerrors "go-workforce/internal/backend/employee/errors"

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
	require.NoError(t, db.AutoMigrate(&Employee{}, &attendance.Record{}))
	return db, NewRepository(db)
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&Employee{EmployeeID: "E1", FullName: "Ana", Email: "ana@x.io", Department: "Ops"}).Error)
	require.NoError(t, db.Create(&Employee{EmployeeID: "E2", FullName: "Ben", Email: "ben@x.io", Department: "Eng"}).Error)
	for _, r := range []attendance.Record{
		{ID: "r1", EmployeeID: "E1", Date: "2024-01-01", Status: attendance.StatusPresent},
		{ID: "r2", EmployeeID: "E1", Date: "2024-01-03", Status: attendance.StatusAbsent},
		{ID: "r3", EmployeeID: "E2", Date: "2024-01-02", Status: attendance.StatusPresent},
	} {
		r := r
		require.NoError(t, db.Create(&r).Error)
	}
}

func TestRepository_FindAll_PreloadsRecords(t *testing.T) {
	db, repo := setupRepoTest(t)
	seed(t, db)

	empls, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, empls, 2)
	assert.Equal(t, "E1", empls[0].EmployeeID)
	require.Len(t, empls[0].AttendanceRecords, 2)
	assert.Equal(t, "2024-01-03", empls[0].AttendanceRecords[0].Date)
	assert.Len(t, empls[1].AttendanceRecords, 1)
}

func TestRepository_Create_Conflicts(t *testing.T) {
	db, repo := setupRepoTest(t)
	seed(t, db)
	ctx := context.Background()

	err := repo.Create(ctx, &Employee{EmployeeID: "E1", FullName: "X", Email: "new@x.io", Department: "Ops"})
	assert.ErrorIs(t, mapRepositoryError(err), employeeerrors.ErrEmployeeIDAlreadyExists)

	err = repo.Create(ctx, &Employee{EmployeeID: "E3", FullName: "X", Email: "ana@x.io", Department: "Ops"})
	assert.ErrorIs(t, mapRepositoryError(err), employeeerrors.ErrEmployeeEmailAlreadyExists)
}

func TestRepository_Delete_Cascades(t *testing.T) {
	db, repo := setupRepoTest(t)
	seed(t, db)
	ctx := context.Background()

	var removed int64
	err := db.Transaction(func(tx *gorm.DB) error {
		n, err := repo.WithTx(tx).Delete(ctx, "E1")
		removed = n
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	var left int64
	require.NoError(t, db.Model(&attendance.Record{}).Count(&left).Error)
	assert.Equal(t, int64(1), left)

	_, err = repo.FindByID(ctx, "E1")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepository_Delete_Missing(t *testing.T) {
	_, repo := setupRepoTest(t)

	_, err := repo.Delete(context.Background(), "nobody")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, mapRepositoryError(err), employeeerrors.ErrEmployeeNotFound)
}
