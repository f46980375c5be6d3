package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"todotui/internal/store"
)

// Store keeps tasks in an in-memory SQLite database. The database lives
// for the session only; nothing is written to disk. Useful when you want
// SQL semantics (constraints, transactions) behind the same Store
// interface as the memory backend.
type Store struct {
	store.Notifier
	conn *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL CHECK (title <> ''),
    done BOOLEAN NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// New creates a new store backed by a fresh in-memory database
func New() (*Store, error) {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Every sqlite connection gets its own in-memory database, so the
	// pool must never grow past one connection.
	conn.SetMaxOpenConns(1)

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

// Close closes the database connection, discarding all tasks
func (s *Store) Close() error {
	return s.conn.Close()
}

// List returns all tasks in insertion order
func (s *Store) List() ([]store.Task, error) {
	rows, err := s.conn.Query(`
		SELECT id, title, done, created_at
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []store.Task
	for rows.Next() {
		var t store.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Done, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Add inserts a new task and returns it with its assigned ID
func (s *Store) Add(title string) (store.Task, error) {
	if title == "" {
		return store.Task{}, store.ErrEmptyTitle
	}

	result, err := s.conn.Exec(
		`INSERT INTO tasks (title, done) VALUES (?, 0)`, title,
	)
	if err != nil {
		return store.Task{}, fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return store.Task{}, fmt.Errorf("getting insert ID: %w", err)
	}

	var t store.Task
	err = s.conn.QueryRow(
		`SELECT id, title, done, created_at FROM tasks WHERE id = ?`, id,
	).Scan(&t.ID, &t.Title, &t.Done, &t.CreatedAt)
	if err != nil {
		return store.Task{}, fmt.Errorf("reading back task: %w", err)
	}

	s.Notify()
	return t, nil
}

// Toggle flips the done flag of the task with the given ID
func (s *Store) Toggle(id int64) error {
	result, err := s.conn.Exec(
		`UPDATE tasks SET done = NOT done WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("toggling task: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking toggle result: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}

	s.Notify()
	return nil
}

// Remove deletes the task with the given ID
func (s *Store) Remove(id int64) error {
	result, err := s.conn.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}

	s.Notify()
	return nil
}

// Clear removes all tasks unconditionally
func (s *Store) Clear() error {
	if _, err := s.conn.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clearing tasks: %w", err)
	}

	s.Notify()
	return nil
}

// Register the sqlite backend
func init() {
	store.Register("sqlite", func() (store.Store, error) { return New() })
}
