package notify_test

import (
	"bytes"
	"sync"
	"testing"

	"go-workforce/internal/notify"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorder(t *testing.T) {
	rec := notify.NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Notify(notify.Success("ok"))
		}()
	}
	wg.Wait()
	rec.Notify(notify.Error("bad"))

	assert.Len(t, rec.All(), 11)
	assert.Len(t, rec.ByLevel(notify.LevelSuccess), 10)
	assert.Equal(t, []notify.Notification{notify.Error("bad")}, rec.ByLevel(notify.LevelError))

	rec.Reset()
	assert.Empty(t, rec.All())
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewWriterNotifier(&buf)

	n.Notify(notify.Success("Employee created"))
	n.Notify(notify.Error("Deletion failed"))

	assert.Equal(t, "✓ Employee created\n✗ Deletion failed\n", buf.String())
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	n := notify.NewLogNotifier(zap.New(core))

	n.Notify(notify.Success("Marked Present"))
	n.Notify(notify.Error("Failed"))

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "Marked Present", entries[0].Message)
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
		assert.Equal(t, zap.WarnLevel, entries[1].Level)
	}
}

func TestMulti(t *testing.T) {
	a, b := notify.NewRecorder(), notify.NewRecorder()
	notify.Multi{a, nil, b}.Notify(notify.Success("x"))

	assert.Len(t, a.All(), 1)
	assert.Len(t, b.All(), 1)
}
