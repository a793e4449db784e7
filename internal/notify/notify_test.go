package notify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_AddClearLevel(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	assert.False(t, q.HasAny())

	q.Notify(LevelInfo, "saved")
	q.Notify(LevelError, "rolled back")
	q.Notify(LevelInfo, "refreshed")

	assert.Len(t, q.All(), 3)

	q.ClearLevel(LevelInfo)
	all := q.All()
	assert.Equal(t, []Notification{{Level: LevelError, Message: "rolled back"}}, all)

	q.Clear()
	assert.False(t, q.HasAny())
}

func TestQueue_AllReturnsCopy(t *testing.T) {
	t.Parallel()
	q := NewQueue()
	q.Notify(LevelWarning, "w")

	all := q.All()
	all[0].Message = "changed"
	assert.Equal(t, "w", q.All()[0].Message)
}

func TestQueue_ConcurrentNotify(t *testing.T) {
	t.Parallel()
	q := NewQueue()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Notify(LevelInfo, "x")
		}()
	}
	wg.Wait()
	assert.Len(t, q.All(), 20)
}

func TestLevelString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "error", LevelError.String())
}
