// Package notify is the outbound notification port. Core components emit
// success/error events through a Notifier and never read them back.
package notify

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

func Success(message string) Notification {
	return Notification{Level: LevelSuccess, Message: message}
}

func Error(message string) Notification {
	return Notification{Level: LevelError, Message: message}
}

type Notifier interface {
	Notify(n Notification)
}

// Func adapts a plain function to Notifier.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, target := range m {
		if target != nil {
			target.Notify(n)
		}
	}
}

// Recorder keeps every notification in memory. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Recorder) ByLevel(level Level) []Notification {
	var out []Notification
	for _, n := range r.All() {
		if n.Level == level {
			out = append(out, n)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier writes notifications as structured log entries.
func NewLogNotifier(logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notify")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notify")
	}
	return &logNotifier{logger: l}
}

func (n *logNotifier) Notify(note Notification) {
	if note.Level == LevelError {
		n.logger.Warn(note.Message, zap.String("level", string(note.Level)))
		return
	}
	n.logger.Info(note.Message, zap.String("level", string(note.Level)))
}

type writerNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier prints one line per notification, the terminal version of a toast.
func NewWriterNotifier(w io.Writer) Notifier {
	return &writerNotifier{w: w}
}

func (n *writerNotifier) Notify(note Notification) {
	mark := "✓"
	if note.Level == LevelError {
		mark = "✗"
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "%s %s\n", mark, note.Message)
}

// MsgLoadFailed is emitted whenever a snapshot refresh fails.
const MsgLoadFailed = "Failed to load data"

func LoadFailed() Notification {
	return Error(MsgLoadFailed)
}
