package attendance_test

import (
	"context"
	"errors"
	"testing"

	"go-workforce/internal/backend/attendance"
	attendanceerrors "go-workforce/internal/backend/attendance/errors"
	attendanceMock "go-workforce/internal/backend/attendance/mock"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	kafkaMock "go-workforce/internal/messaging/kafka/mock"
	"go-workforce/internal/shared/cache"
	"go-workforce/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   attendance.Service
	repo      *attendanceMock.MockRepository
	redismock redismock.ClientMock
	publisher *kafkaMock.MockPublisher
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := attendanceMock.NewMockRepository(ctrl)
	publisher := kafkaMock.NewMockPublisher(ctrl)

	return &serviceDeps{
		sqlMock:   sqlMock,
		service:   attendance.NewService(db, repo, dbRedis, publisher),
		repo:      repo,
		redismock: redisMock,
		publisher: publisher,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestAttendanceService_Mark(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "REQ-9")
	req := attendance.MarkAttendanceRequest{
		Employee: " E1 ",
		Date:     "2024-01-02",
		Status:   attendance.StatusPresent,
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		var created attendance.Record
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, "E1").Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, r *attendance.Record) error {
				assert.NotEmpty(t, r.ID)
				assert.Equal(t, "E1", r.EmployeeID)
				created = *r
				return nil
			})
		deps.redismock.ExpectDel(cache.EmployeesListKey).SetVal(1)
		deps.publisher.EXPECT().
			Publish(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.Event) error {
				assert.Equal(t, events.DirectoryLifecycleTopic, e.Topic)
				assert.Equal(t, events.TypeAttendanceMarked, e.EventType)
				assert.Equal(t, "E1", e.Key)
				payload := e.Payload.(events.AttendanceMarkedEvent)
				assert.Equal(t, "REQ-9", payload.RequestID)
				assert.Equal(t, created.ID, payload.RecordID)
				assert.False(t, payload.OccurredAt.IsZero())
				return nil
			})

		resp, err := deps.service.Mark(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, attendance.RecordResponse{
			ID:       created.ID,
			Employee: "E1",
			Date:     "2024-01-02",
			Status:   "Present",
		}, resp)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, "E1").Return(false, nil)

		_, err := deps.service.Mark(ctx, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("already marked", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, "E1").Return(true, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"})

		_, err := deps.service.Mark(ctx, req)

		assert.ErrorIs(t, err, attendanceerrors.ErrAttendanceAlreadyMarked)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("publish failure keeps the record", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, "E1").Return(true, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(cache.EmployeesListKey).SetVal(1)
		deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("broker down"))

		resp, err := deps.service.Mark(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "E1", resp.Employee)
	})
}

func TestAttendanceService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx).Return([]attendance.Record{
			{ID: "r2", EmployeeID: "E1", Date: "2024-01-02", Status: "Absent"},
			{ID: "r1", EmployeeID: "E1", Date: "2024-01-01", Status: "Present"},
		}, nil)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "r2", resp[0].ID)
		assert.Equal(t, "Absent", resp[0].Status)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx).Return(nil, nil)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Empty(t, resp)
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)

		assert.Error(t, err)
	})
}
