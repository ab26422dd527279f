package employee

import (
	"context"
	"net/http"

	"go-workforce/internal/confirm"
	employeeerrors "go-workforce/internal/employee/errors"
	"go-workforce/internal/mutation"
	"go-workforce/internal/notify"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service interface {
	// Create succeeds with a refreshed employee snapshot; on success the
	// presentation layer resets its form and closes the creation dialog.
	Create(ctx context.Context, req CreateEmployeeRequest) mutation.Outcome
	Delete(ctx context.Context, employeeID string) mutation.Outcome
}

type service struct {
	gateway  Gateway
	store    Refresher
	notifier notify.Notifier
	gate     confirm.Gate
	tracker  *mutation.Tracker
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(
	gateway Gateway,
	store Refresher,
	notifier notify.Notifier,
	gate confirm.Gate,
	tracker *mutation.Tracker,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if tracker == nil {
		tracker = mutation.NewTracker()
	}
	return &service{
		gateway:  gateway,
		store:    store,
		notifier: notifier,
		gate:     gate,
		tracker:  tracker,
		validate: apperror.NewValidator(),
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) mutation.Outcome {
	log := contextutil.GetLogger(ctx, s.logger)
	req = req.Normalize()
	log.Debug("create employee requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("email", req.Email),
		zap.String("department", req.Department),
	)

	// Only presence is checked here; format and uniqueness belong to the backend.
	if err := s.validate.Struct(req); err != nil {
		mapped := apperror.MapValidationError(err)
		log.Warn("create employee rejected locally", zap.String("reason", mapped.Message))
		s.notifier.Notify(notify.Error(mapped.Message))
		return mutation.Outcome{
			Kind:  mutation.KindCreateEmployee,
			State: mutation.StateIdle,
			Err:   apperror.Wrap(employeeerrors.ErrMissingRequiredFields, apperror.CodeLocalValidation, mapped.Message, http.StatusBadRequest),
		}
	}

	ctx = context.WithoutCancel(ctx)
	m := s.tracker.Begin(mutation.KindCreateEmployee)

	created, err := s.gateway.CreateEmployee(ctx, req)
	if err != nil {
		m.Fail()
		log.Warn("create employee failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("code", apperror.CodeOf(err)),
			zap.Error(err),
		)
		s.notifier.Notify(notify.Error(employeeerrors.MsgCreateFailed))
		return mutation.Outcome{Kind: mutation.KindCreateEmployee, State: mutation.StateFailed, Err: err}
	}

	m.Succeed()
	log.Info("create employee success", zap.String("employee_id", created.EmployeeID))
	s.notifier.Notify(notify.Success(employeeerrors.MsgCreated))
	s.refresh(ctx, log)

	return mutation.Outcome{Kind: mutation.KindCreateEmployee, State: mutation.StateSucceeded}
}

func (s *service) Delete(ctx context.Context, employeeID string) mutation.Outcome {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested", zap.String("employee_id", employeeID))

	if employeeID == "" {
		s.notifier.Notify(notify.Error(employeeerrors.ErrNoEmployeeSelected.Message))
		return mutation.Outcome{Kind: mutation.KindDeleteEmployee, State: mutation.StateIdle, Err: employeeerrors.ErrNoEmployeeSelected}
	}

	ok, err := s.gate.Confirm(ctx, employeeerrors.PromptDelete)
	if err != nil {
		log.Warn("delete employee confirmation failed, treating as declined", zap.Error(err))
		ok = false
	}
	if !ok {
		log.Debug("delete employee declined", zap.String("employee_id", employeeID))
		return mutation.Outcome{Kind: mutation.KindDeleteEmployee, State: mutation.StateIdle}
	}

	ctx = context.WithoutCancel(ctx)
	m := s.tracker.Begin(mutation.KindDeleteEmployee)

	// Fail closed: nothing leaves the snapshot until the backend confirms.
	if err := s.gateway.DeleteEmployee(ctx, employeeID); err != nil {
		m.Fail()
		log.Warn("delete employee failed",
			zap.String("employee_id", employeeID),
			zap.String("code", apperror.CodeOf(err)),
			zap.Error(err),
		)
		s.notifier.Notify(notify.Error(employeeerrors.MsgDeleteFailed))
		return mutation.Outcome{Kind: mutation.KindDeleteEmployee, State: mutation.StateFailed, Err: err}
	}

	m.Succeed()
	log.Info("delete employee success", zap.String("employee_id", employeeID))
	s.notifier.Notify(notify.Success(employeeerrors.MsgDeleted))
	s.refresh(ctx, log)

	return mutation.Outcome{Kind: mutation.KindDeleteEmployee, State: mutation.StateSucceeded}
}

func (s *service) refresh(ctx context.Context, log *zap.Logger) {
	if err := s.store.RefreshEmployees(ctx); err != nil {
		log.Error("refresh employees after mutation failed", zap.Error(err))
		s.notifier.Notify(notify.LoadFailed())
	}
}
