package cli

import (
	"context"
	"io"

	"go-workforce/internal/attendance"
	"go-workforce/internal/config"
	"go-workforce/internal/confirm"
	"go-workforce/internal/employee"
	"go-workforce/internal/mutation"
	"go-workforce/internal/notify"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/contextutil"
	"go-workforce/internal/store"
	"go-workforce/internal/view"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// session is the client wiring for one command invocation.
type session struct {
	ctx      context.Context
	cfg      config.Client
	logger   *zap.Logger
	out      *OutputFormatter
	notes    *notify.Recorder
	notifier notify.Notifier

	store      *store.Store
	tracker    *mutation.Tracker
	employees  employee.Service
	attendance attendance.Service

	employeeView   *view.EmployeeView
	attendanceView *view.AttendanceView
}

func (o *RootOptions) open(cmd *cobra.Command, gate confirm.Gate) (*session, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
		if err := cfg.Validate(); err != nil {
			return nil, WrapExitError(ExitCommandError, "invalid --base-url", err)
		}
	}

	level, _ := cfg.Level()
	if o.Verbose {
		level = zapcore.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)

	requestID := uuid.NewString()
	ctx := contextutil.WithRequestID(cmd.Context(), requestID)
	ctx = contextutil.WithLogger(ctx, logger.With(zap.String("request_id", requestID)))

	out := &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
	notes := notify.NewRecorder()
	notifiers := notify.Multi{notes}
	switch {
	case cfg.NotifyFormat == config.NotifyLog:
		notifiers = append(notifiers, notify.NewLogNotifier(logger))
	case !out.JSON():
		notifiers = append(notifiers, notify.NewWriterNotifier(cmd.ErrOrStderr()))
	}

	remote := o.dial(cfg, logger)
	st := store.New(remote, logger)
	tracker := mutation.NewTracker(func(tr mutation.Transition) {
		logger.Debug("mutation transition",
			zap.String("kind", string(tr.Kind)),
			zap.Uint64("id", tr.ID),
			zap.String("from", string(tr.From)),
			zap.String("to", string(tr.To)),
		)
	})
	if gate == nil {
		gate = confirm.Static(false)
	}

	return &session{
		ctx:            ctx,
		cfg:            cfg,
		logger:         logger,
		out:            out,
		notes:          notes,
		notifier:       notifiers,
		store:          st,
		tracker:        tracker,
		employees:      employee.NewService(remote, st, notifiers, gate, tracker, logger),
		attendance:     attendance.NewService(remote, st, notifiers, tracker, logger),
		employeeView:   view.NewEmployeeView(st, o.now),
		attendanceView: view.NewAttendanceView(st),
	}, nil
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core).Named("directory")
}

// loadFailed reports a failed refresh and ends the command.
func (s *session) loadFailed(err error) error {
	s.notifier.Notify(notify.LoadFailed())
	code := apperror.CodeOf(err)
	if code == "" {
		code = apperror.CodeNetworkFailure
	}
	if perr := s.out.Error(code, notify.MsgLoadFailed, s.notes.All()); perr != nil {
		return perr
	}
	return errReported
}

// finish prints the outcome of a mutation and maps it to an exit code.
func (s *session) finish(out mutation.Outcome, data any, text func(w io.Writer) error) error {
	notes := s.notes.All()
	switch {
	case out.Succeeded():
		return s.out.Success(data, notes, text)
	case out.Aborted():
		return s.out.Aborted(notes)
	}

	msg := ""
	if errs := s.notes.ByLevel(notify.LevelError); len(errs) > 0 {
		msg = errs[len(errs)-1].Message
	}
	code := apperror.CodeOf(out.Err)
	if code == "" {
		code = apperror.CodeInternalError
	}
	if err := s.out.Error(code, msg, notes); err != nil {
		return err
	}
	return errReported
}
