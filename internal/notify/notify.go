// Package notify collects user-facing notifications raised by background
// work such as failed mutations
package notify

import (
	"slices"
	"sync"
)

// Level represents the severity of a notification.
type Level int

const (
	// LevelInfo represents informational notifications
	LevelInfo Level = iota
	// LevelWarning represents warnings, e.g. a refetch that failed after a successful write
	LevelWarning
	// LevelError represents error notifications, e.g. a rolled back edit
	LevelError
)

// String returns the level name used in logs and JSON output
func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   Level
	Message string
}

// Notifier receives notifications
type Notifier interface {
	Notify(level Level, message string)
}

// Queue stores notifications until the UI shows or clears them. It is safe
// for concurrent use.
type Queue struct {
	mu            sync.Mutex
	notifications []Notification
}

// NewQueue creates an empty Queue
func NewQueue() *Queue {
	return &Queue{}
}

// Notify adds a notification with the specified level and message.
func (q *Queue) Notify(level Level, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notifications = append(q.notifications, Notification{Level: level, Message: message})
}

// Clear removes all notifications.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notifications = nil
}

// ClearLevel removes all notifications of a specific level.
func (q *Queue) ClearLevel(level Level) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notifications = slices.DeleteFunc(q.notifications, func(n Notification) bool {
		return n.Level == level
	})
}

// All returns a copy of the current notifications, oldest first.
func (q *Queue) All() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.notifications)
}

// HasAny returns true if there are any notifications.
func (q *Queue) HasAny() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.notifications) > 0
}

// Discard drops every notification
type Discard struct{}

func (Discard) Notify(Level, string) {}
