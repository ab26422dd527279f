package app_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-workforce/internal/app"
	"go-workforce/internal/attendance"
	"go-workforce/internal/employee"
	"go-workforce/internal/gateway"
	"go-workforce/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("CONNECT_RETRIES", "")
		t.Setenv("DB_DRIVER", "")

		cfg := app.LoadConfig()

		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, 5, cfg.MaxRetries)
		assert.Equal(t, "", cfg.DB.Driver)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("CONNECT_RETRIES", "2")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("SQLITE_PATH", "/tmp/dir.db")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("KAFKA_BROKER", "localhost:9092")

		cfg := app.LoadConfig()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 2, cfg.MaxRetries)
		assert.Equal(t, "sqlite", cfg.DB.Driver)
		assert.Equal(t, "/tmp/dir.db", cfg.DB.SQLitePath)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, "localhost:9092", cfg.KafkaBroker)
	})
}

func TestHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)

	router := app.NewRouter(app.Deps{DB: db, Logger: zap.NewNop()})

	mock.ExpectPing()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func newSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, app.Migrate(db))
	return db
}

// The directory client against the real router on SQLite.
func TestGatewayRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	db := newSQLite(t)
	server := httptest.NewServer(app.NewRouter(app.Deps{DB: db, Logger: zap.NewNop()}))
	defer server.Close()

	client := gateway.New(server.URL+"/api", 5*time.Second, zap.NewNop())
	ctx := context.Background()

	created, err := client.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: "E1", FullName: "Ana", Email: "ana@x.io", Department: "Ops",
	})
	require.NoError(t, err)
	assert.Equal(t, "E1", created.EmployeeID)

	_, err = client.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: "E2", FullName: "Ben", Email: "ana@x.io", Department: "Eng",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidationConflict(err))
	assert.Equal(t, "Employee with the same email already exists", apperror.RemoteMessage(err))

	_, err = client.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: "E3", FullName: "Cy", Email: "not-an-email", Department: "Eng",
	})
	assert.True(t, apperror.IsValidationConflict(err))

	for _, date := range []string{"2024-01-01", "2024-01-03"} {
		_, err := client.CreateAttendance(ctx, attendance.MarkAttendanceRequest{
			Employee: "E1", Date: date, Status: attendance.StatusPresent,
		})
		require.NoError(t, err)
	}

	_, err = client.CreateAttendance(ctx, attendance.MarkAttendanceRequest{
		Employee: "E1", Date: "2024-01-01", Status: attendance.StatusAbsent,
	})
	assert.Equal(t, "Attendance already marked for this date", apperror.RemoteMessage(err))

	_, err = client.CreateAttendance(ctx, attendance.MarkAttendanceRequest{
		Employee: "ghost", Date: "2024-01-01", Status: attendance.StatusAbsent,
	})
	assert.Equal(t, "Employee does not exist", apperror.RemoteMessage(err))

	records, err := client.ListAttendance(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-03", records[0].Date)

	empls, err := client.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, empls, 1)
	assert.Len(t, empls[0].AttendanceRecords, 2)

	require.NoError(t, client.DeleteEmployee(ctx, "E1"))

	err = client.DeleteEmployee(ctx, "E1")
	assert.True(t, apperror.IsNotFound(err))

	records, err = client.ListAttendance(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
