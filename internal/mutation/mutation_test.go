package mutation_test

import (
	"errors"
	"sync"
	"testing"

	"go-workforce/internal/mutation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transitionLog struct {
	mu    sync.Mutex
	items []mutation.Transition
}

func (l *transitionLog) record(tr mutation.Transition) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, tr)
}

func (l *transitionLog) forID(id uint64) []mutation.State {
	l.mu.Lock()
	defer l.mu.Unlock()
	var states []mutation.State
	for _, tr := range l.items {
		if tr.ID == id {
			if len(states) == 0 {
				states = append(states, tr.From)
			}
			states = append(states, tr.To)
		}
	}
	return states
}

func TestTracker_Lifecycle(t *testing.T) {
	log := &transitionLog{}
	tracker := mutation.NewTracker(log.record)

	assert.Equal(t, mutation.StateIdle, tracker.State(mutation.KindCreateEmployee))

	m := tracker.Begin(mutation.KindCreateEmployee)
	assert.Equal(t, mutation.StateSubmitting, tracker.State(mutation.KindCreateEmployee))
	assert.Equal(t, mutation.StateIdle, tracker.State(mutation.KindDeleteEmployee))

	m.Succeed()
	m.Fail() // ignored, already finished

	assert.Equal(t, mutation.StateIdle, tracker.State(mutation.KindCreateEmployee))
	assert.Equal(t, []mutation.State{
		mutation.StateIdle,
		mutation.StateSubmitting,
		mutation.StateSucceeded,
		mutation.StateIdle,
	}, log.forID(m.ID()))
}

func TestTracker_FailedPath(t *testing.T) {
	log := &transitionLog{}
	tracker := mutation.NewTracker(log.record)

	m := tracker.Begin(mutation.KindMarkAttendance)
	m.Fail()

	assert.Equal(t, []mutation.State{
		mutation.StateIdle,
		mutation.StateSubmitting,
		mutation.StateFailed,
		mutation.StateIdle,
	}, log.forID(m.ID()))
}

func TestTracker_ConcurrentInvocationsAreIndependent(t *testing.T) {
	tracker := mutation.NewTracker()

	first := tracker.Begin(mutation.KindCreateEmployee)
	second := tracker.Begin(mutation.KindCreateEmployee)
	require.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 2, tracker.InFlight(mutation.KindCreateEmployee))

	first.Fail()
	assert.Equal(t, mutation.StateSubmitting, tracker.State(mutation.KindCreateEmployee))

	second.Succeed()
	assert.Equal(t, mutation.StateIdle, tracker.State(mutation.KindCreateEmployee))
	assert.Equal(t, 0, tracker.InFlight(mutation.KindCreateEmployee))
}

func TestTracker_ParallelBeginFinish(t *testing.T) {
	tracker := mutation.NewTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := tracker.Begin(mutation.KindDeleteEmployee)
			if i%2 == 0 {
				m.Succeed()
			} else {
				m.Fail()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, tracker.InFlight(mutation.KindDeleteEmployee))
}

func TestOutcome(t *testing.T) {
	assert.True(t, mutation.Outcome{State: mutation.StateSucceeded}.Succeeded())
	assert.True(t, mutation.Outcome{State: mutation.StateFailed}.Failed())
	assert.True(t, mutation.Outcome{State: mutation.StateIdle, Err: errors.New("no employee")}.Rejected())
	assert.True(t, mutation.Outcome{State: mutation.StateIdle}.Aborted())
	assert.False(t, mutation.Outcome{State: mutation.StateIdle}.Rejected())
}
