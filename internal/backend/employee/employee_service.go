package employee

import (
	"context"
	"encoding/json"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/cache"
	"go-workforce/internal/shared/contextutil"

	"github.com/gin-gonic/gin/binding"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db        *gorm.DB
	repo      Repository
	rdb       *redis.Client
	publisher kafka.Publisher
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

// NewService wires the employee service. rdb and publisher may be nil.
func NewService(
	db *gorm.DB,
	repo Repository,
	rdb *redis.Client,
	publisher kafka.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}
	return &service{
		db:        db,
		repo:      repo,
		rdb:       rdb,
		publisher: publisher,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	req = req.Normalize()
	log.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
	)

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		log.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, apperror.MapValidationError(err)
	}

	empl := &Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, empl)
	})
	if err != nil {
		err = mapRepositoryError(err)
		log.Warn("create employee persist failed",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	cache.Invalidate(ctx, s.rdb, log, cache.EmployeesListKey)

	s.publish(ctx, kafka.Event{
		Topic:         events.DirectoryLifecycleTopic,
		Key:           empl.EmployeeID,
		EventType:     events.TypeEmployeeCreated,
		AggregateType: "employee",
		Payload: events.EmployeeCreatedEvent{
			EventType:  events.TypeEmployeeCreated,
			RequestID:  rid,
			EmployeeID: empl.EmployeeID,
			Email:      empl.Email,
			Department: empl.Department,
			OccurredAt: s.now().UTC(),
		},
	})

	log.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.EmployeeID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	cacheKey := cache.EmployeesListKey

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				log.Debug("get all employees served from cache")
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, cache.DefaultTTL).Err(); err != nil {
					log.Warn("cache employee list failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		log.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee by id requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	var removed int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.repo.WithTx(tx).Delete(ctx, id)
		removed = n
		return err
	})
	if err != nil {
		err = mapRepositoryError(err)
		log.Warn("delete employee failed",
			zap.String("request_id", rid),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return err
	}

	cache.Invalidate(ctx, s.rdb, log, cache.EmployeesListKey)

	s.publish(ctx, kafka.Event{
		Topic:         events.DirectoryLifecycleTopic,
		Key:           id,
		EventType:     events.TypeEmployeeDeleted,
		AggregateType: "employee",
		Payload: events.EmployeeDeletedEvent{
			EventType:         events.TypeEmployeeDeleted,
			RequestID:         rid,
			EmployeeID:        id,
			AttendanceRemoved: removed,
			OccurredAt:        s.now().UTC(),
		},
	})

	log.Info("delete employee success",
		zap.String("employee_id", id),
		zap.Int64("attendance_removed", removed),
	)
	return nil
}

func (s *service) publish(ctx context.Context, event kafka.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("publish lifecycle event failed",
			zap.String("event_type", event.EventType),
			zap.String("key", event.Key),
			zap.Error(err),
		)
	}
}
