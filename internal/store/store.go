package store

import (
	"errors"
	"time"
)

// Task represents a single to-do entry
type Task struct {
	ID        int64 // Stable identifier, assigned at creation, never reused
	Title     string
	Done      bool
	CreatedAt time.Time
}

// Sentinel errors returned by Store operations
var (
	// ErrEmptyTitle is returned by Add when the title is empty.
	// Callers are expected to treat it as a rejected input, not a failure.
	ErrEmptyTitle = errors.New("task title is empty")

	// ErrNotFound is returned by Toggle and Remove for an unknown task ID.
	ErrNotFound = errors.New("task not found")
)

// Store defines the interface that all task store backends must implement.
// A store owns an ordered sequence of tasks, insertion order preserved,
// duplicate titles permitted. It is created empty and lives for the session.
type Store interface {
	// List returns a snapshot of all tasks in insertion order.
	// The returned slice is a copy; callers may not mutate store state
	// through it.
	List() ([]Task, error)

	// Add appends a new, not-done task and returns it.
	// An empty title is rejected with ErrEmptyTitle and nothing changes.
	Add(title string) (Task, error)

	// Toggle flips the done flag of the task with the given ID.
	Toggle(id int64) error

	// Remove deletes the task with the given ID. Remaining tasks keep
	// their relative order.
	Remove(id int64) error

	// Clear removes all tasks unconditionally.
	Clear() error

	// Subscribe registers fn to run after every successful mutation.
	// Callbacks run synchronously on the mutating goroutine and must not
	// call back into the store.
	Subscribe(fn func())

	// Close releases any backend resources.
	Close() error
}

// Factory is a function that creates a new, empty Store
type Factory func() (Store, error)

// Notifier implements the Subscribe half of Store. Backends embed it and
// call Notify after each successful mutation.
type Notifier struct {
	subs []func()
}

// Subscribe registers fn to run on every change notification
func (n *Notifier) Subscribe(fn func()) {
	n.subs = append(n.subs, fn)
}

// Notify runs all registered callbacks in subscription order
func (n *Notifier) Notify() {
	for _, fn := range n.subs {
		fn()
	}
}
