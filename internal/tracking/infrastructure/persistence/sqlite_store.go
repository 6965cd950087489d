package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id     TEXT NOT NULL UNIQUE,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status      INTEGER NOT NULL,
	priority    INTEGER NOT NULL,
	assignee    TEXT NOT NULL,
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL,
	tags        TEXT NOT NULL DEFAULT '[]'
);
CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee);
`

// SQLiteStore implements task.Store backed by a SQLite database. The seq
// column preserves insertion order across queries.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLiteStore over an open connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLiteStore opens the database at path and ensures the schema exists.
func OpenSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := NewSQLiteStore(db)
	if err := store.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Migrate creates the tasks table if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("migrate sqlite schema: %w", err)
	}
	return nil
}

// Insert appends a task to the corpus. Used by the seed path only; the
// serving process never writes.
func (s *SQLiteStore) Insert(ctx context.Context, t task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return fmt.Errorf("encode tags for task %s: %w", t.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO tasks (task_id, title, description, status, priority, assignee, created_at, updated_at, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, t.Status.Wire(), t.Priority.Wire(), t.Assignee, t.CreatedAt, t.UpdatedAt, string(tags),
	)
	if err != nil {
		return fmt.Errorf("insert task %s: %w", t.ID, err)
	}
	return nil
}

// TasksForUser returns the user's tasks in insertion order.
func (s *SQLiteStore) TasksForUser(ctx context.Context, userID string) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT task_id, title, description, status, priority, assignee, created_at, updated_at, tags
		 FROM tasks WHERE assignee = ? ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("query tasks for user %s: %w", userID, err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// AllTasks returns the full corpus in insertion order.
func (s *SQLiteStore) AllTasks(ctx context.Context) ([]task.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT task_id, title, description, status, priority, assignee, created_at, updated_at, tags
		 FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query all tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanTasks(rows *sql.Rows) ([]task.Task, error) {
	var tasks []task.Task
	for rows.Next() {
		var (
			t            task.Task
			status, prio int32
			tagsJSON     string
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &status, &prio, &t.Assignee, &t.CreatedAt, &t.UpdatedAt, &tagsJSON); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}

		st, err := task.StatusFromWire(status)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		pr, err := task.PriorityFromWire(prio)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		t.Status = st
		t.Priority = pr

		if err := json.Unmarshal([]byte(tagsJSON), &t.Tags); err != nil {
			return nil, fmt.Errorf("decode tags for task %s: %w", t.ID, err)
		}

		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

var _ task.Store = (*SQLiteStore)(nil)
