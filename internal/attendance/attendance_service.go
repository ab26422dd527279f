package attendance

import (
	"context"
	"time"

	attendanceerrors "go-workforce/internal/attendance/errors"
	"go-workforce/internal/mutation"
	"go-workforce/internal/notify"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) mutation.Outcome
}

type service struct {
	gateway  Gateway
	store    Refresher
	notifier notify.Notifier
	tracker  *mutation.Tracker
	logger   *zap.Logger
}

func NewService(
	gateway Gateway,
	store Refresher,
	notifier notify.Notifier,
	tracker *mutation.Tracker,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if tracker == nil {
		tracker = mutation.NewTracker()
	}
	return &service{
		gateway:  gateway,
		store:    store,
		notifier: notifier,
		tracker:  tracker,
		logger:   l,
	}
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) mutation.Outcome {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("mark attendance requested",
		zap.String("employee_id", req.Employee),
		zap.String("date", req.Date),
		zap.String("status", string(req.Status)),
	)

	if appErr := validateMark(req); appErr != nil {
		log.Warn("mark attendance rejected locally", zap.String("reason", appErr.Message))
		s.notifier.Notify(notify.Error(appErr.Message))
		return mutation.Outcome{Kind: mutation.KindMarkAttendance, State: mutation.StateIdle, Err: appErr}
	}

	// Once issued the call runs to completion even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	m := s.tracker.Begin(mutation.KindMarkAttendance)

	created, err := s.gateway.CreateAttendance(ctx, req)
	if err != nil {
		m.Fail()
		msg := apperror.RemoteMessage(err)
		if msg == "" {
			msg = attendanceerrors.MsgMarkFailed
		}
		log.Warn("mark attendance failed",
			zap.String("employee_id", req.Employee),
			zap.String("code", apperror.CodeOf(err)),
			zap.Error(err),
		)
		s.notifier.Notify(notify.Error(msg))
		return mutation.Outcome{Kind: mutation.KindMarkAttendance, State: mutation.StateFailed, Err: err}
	}

	m.Succeed()
	log.Info("mark attendance success",
		zap.String("attendance_id", string(created.ID)),
		zap.String("employee_id", req.Employee),
	)
	s.notifier.Notify(notify.Success("Marked " + string(req.Status)))

	if err := s.store.RefreshAttendance(ctx); err != nil {
		log.Error("refresh attendance after mark failed", zap.Error(err))
		s.notifier.Notify(notify.LoadFailed())
	}

	return mutation.Outcome{Kind: mutation.KindMarkAttendance, State: mutation.StateSucceeded}
}

func validateMark(req MarkAttendanceRequest) *apperror.AppError {
	if req.Employee == "" {
		return attendanceerrors.ErrNoEmployeeSelected
	}
	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return attendanceerrors.ErrInvalidDate
	}
	if !req.Status.Valid() {
		return attendanceerrors.ErrInvalidStatus
	}
	return nil
}
