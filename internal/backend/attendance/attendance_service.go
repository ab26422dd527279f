package attendance

import (
	"context"
	"strings"
	"time"

	attendanceerrors "go-workforce/internal/backend/attendance/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/cache"
	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (RecordResponse, error)
	GetAll(ctx context.Context) ([]RecordResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	rdb       *redis.Client
	publisher kafka.Publisher
	now       func() time.Time
	logger    *zap.Logger
}

// NewService wires the attendance service. rdb and publisher may be nil.
func NewService(
	db *gorm.DB,
	repo Repository,
	rdb *redis.Client,
	publisher kafka.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}
	return &service{
		db:        db,
		repo:      repo,
		rdb:       rdb,
		publisher: publisher,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (RecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	employeeID := strings.TrimSpace(req.Employee)

	log.Debug("mark attendance requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)

	record := Record{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		Date:       req.Date,
		Status:     req.Status,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, employeeID)
		if err != nil {
			return err
		}
		if !exists {
			return attendanceerrors.ErrEmployeeNotFound
		}

		return mapRepositoryError(qtx.Create(ctx, &record))
	})
	if err != nil {
		log.Warn("mark attendance failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return RecordResponse{}, err
	}

	// employees embed their records, so the cached list is stale now
	cache.Invalidate(ctx, s.rdb, log, cache.EmployeesListKey)

	s.publish(ctx, kafka.Event{
		Topic:         events.DirectoryLifecycleTopic,
		Key:           record.EmployeeID,
		EventType:     events.TypeAttendanceMarked,
		AggregateType: "attendance",
		Payload: events.AttendanceMarkedEvent{
			EventType:  events.TypeAttendanceMarked,
			RequestID:  rid,
			RecordID:   record.ID,
			EmployeeID: record.EmployeeID,
			Date:       record.Date,
			Status:     record.Status,
			OccurredAt: s.now().UTC(),
		},
	})

	log.Info("mark attendance success",
		zap.String("request_id", rid),
		zap.String("record_id", record.ID),
	)
	return MapToResponse(record), nil
}

func (s *service) GetAll(ctx context.Context) ([]RecordResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get all attendance requested")

	records, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error("get all attendance failed", zap.Error(err))
		return nil, err
	}
	return MapToListResponse(records), nil
}

// publish runs after commit. A broker failure is logged, the write stands.
func (s *service) publish(ctx context.Context, event kafka.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("publish lifecycle event failed",
			zap.String("event_type", event.EventType),
			zap.String("key", event.Key),
			zap.Error(err),
		)
	}
}
