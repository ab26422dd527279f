// Package mutation tracks the lifecycle of user-initiated writes:
// Idle -> Submitting -> {Succeeded, Failed} -> Idle, per invocation.
package mutation

import (
	"sync"
	"sync/atomic"
)

type Kind string

const (
	KindCreateEmployee Kind = "create-employee"
	KindDeleteEmployee Kind = "delete-employee"
	KindMarkAttendance Kind = "mark-attendance"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Transition is reported to the listener for every state change of a single
// invocation. ID distinguishes concurrent invocations of the same kind.
type Transition struct {
	Kind Kind
	ID   uint64
	From State
	To   State
}

type Listener func(Transition)

// Tracker counts in-flight invocations per kind. It does not serialize them:
// each Begin is an independent invocation.
type Tracker struct {
	mu       sync.Mutex
	inflight map[Kind]int
	seq      atomic.Uint64
	listener Listener
}

func NewTracker(listener ...Listener) *Tracker {
	t := &Tracker{inflight: make(map[Kind]int)}
	if len(listener) > 0 {
		t.listener = listener[0]
	}
	return t
}

// State is Submitting while at least one invocation of kind is in flight.
func (t *Tracker) State(kind Kind) State {
	if t.InFlight(kind) > 0 {
		return StateSubmitting
	}
	return StateIdle
}

func (t *Tracker) InFlight(kind Kind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inflight[kind]
}

// Begin moves a new invocation from Idle to Submitting.
func (t *Tracker) Begin(kind Kind) *Mutation {
	m := &Mutation{tracker: t, kind: kind, id: t.seq.Add(1)}

	t.mu.Lock()
	t.inflight[kind]++
	t.mu.Unlock()

	t.emit(Transition{Kind: kind, ID: m.id, From: StateIdle, To: StateSubmitting})
	return m
}

func (t *Tracker) emit(tr Transition) {
	if t.listener != nil {
		t.listener(tr)
	}
}

// Mutation is one in-flight invocation. Only the first Succeed/Fail counts.
type Mutation struct {
	tracker *Tracker
	kind    Kind
	id      uint64
	once    sync.Once
}

func (m *Mutation) ID() uint64 { return m.id }

func (m *Mutation) Kind() Kind { return m.kind }

func (m *Mutation) Succeed() { m.finish(StateSucceeded) }

func (m *Mutation) Fail() { m.finish(StateFailed) }

func (m *Mutation) finish(terminal State) {
	m.once.Do(func() {
		t := m.tracker
		t.mu.Lock()
		t.inflight[m.kind]--
		t.mu.Unlock()

		t.emit(Transition{Kind: m.kind, ID: m.id, From: StateSubmitting, To: terminal})
		t.emit(Transition{Kind: m.kind, ID: m.id, From: terminal, To: StateIdle})
	})
}

// Outcome is what a coordinator returns to the presentation layer. State is
// the terminal state reached; it stays Idle when the invocation never reached
// Submitting, either because a local guard rejected it (Err set) or because
// the operator declined confirmation (Err nil).
type Outcome struct {
	Kind  Kind
	State State
	Err   error
}

func (o Outcome) Succeeded() bool { return o.State == StateSucceeded }

func (o Outcome) Failed() bool { return o.State == StateFailed }

func (o Outcome) Rejected() bool { return o.State == StateIdle && o.Err != nil }

func (o Outcome) Aborted() bool { return o.State == StateIdle && o.Err == nil }
