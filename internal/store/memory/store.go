package memory

import (
	"time"

	"todotui/internal/store"
)

// Store is a slice-backed task store. It is the default backend: tasks
// live in process memory for the lifetime of the screen and are gone on
// exit.
type Store struct {
	store.Notifier
	tasks  []store.Task
	nextID int64
}

// New creates a new, empty in-memory store
func New() *Store {
	return &Store{nextID: 1}
}

// List returns a snapshot of all tasks in insertion order
func (s *Store) List() ([]store.Task, error) {
	out := make([]store.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// Add appends a new task with the given title
func (s *Store) Add(title string) (store.Task, error) {
	if title == "" {
		return store.Task{}, store.ErrEmptyTitle
	}

	t := store.Task{
		ID:        s.nextID,
		Title:     title,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.Notify()
	return t, nil
}

// Toggle flips the done flag of the task with the given ID
func (s *Store) Toggle(id int64) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Done = !s.tasks[i].Done
			s.Notify()
			return nil
		}
	}
	return store.ErrNotFound
}

// Remove deletes the task with the given ID, preserving the order of the
// remaining tasks
func (s *Store) Remove(id int64) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.Notify()
			return nil
		}
	}
	return store.ErrNotFound
}

// Clear removes all tasks unconditionally
func (s *Store) Clear() error {
	s.tasks = s.tasks[:0]
	s.Notify()
	return nil
}

// Close is a no-op for the in-memory store
func (s *Store) Close() error {
	return nil
}

// Register the memory backend
func init() {
	store.Register("memory", func() (store.Store, error) { return New(), nil })
}
