package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	seq         BIGSERIAL PRIMARY KEY,
	task_id     TEXT NOT NULL UNIQUE,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	status      INTEGER NOT NULL,
	priority    INTEGER NOT NULL,
	assignee    TEXT NOT NULL,
	created_at  BIGINT NOT NULL,
	updated_at  BIGINT NOT NULL,
	tags        TEXT[] NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assignee);
`

// PostgresStore implements task.Store backed by PostgreSQL via pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore over an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the tasks table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("migrate postgres schema: %w", err)
	}
	return nil
}

// Insert appends a task to the corpus. Used by the seed path only.
func (s *PostgresStore) Insert(ctx context.Context, t task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO tasks (task_id, title, description, status, priority, assignee, created_at, updated_at, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.Title, t.Description, t.Status.Wire(), t.Priority.Wire(), t.Assignee, t.CreatedAt, t.UpdatedAt, t.Tags,
	)
	if err != nil {
		return fmt.Errorf("insert task %s: %w", t.ID, err)
	}
	return nil
}

// TasksForUser returns the user's tasks in insertion order.
func (s *PostgresStore) TasksForUser(ctx context.Context, userID string) ([]task.Task, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT task_id, title, description, status, priority, assignee, created_at, updated_at, tags
		 FROM tasks WHERE assignee = $1 ORDER BY seq`, userID)
	if err != nil {
		return nil, fmt.Errorf("query tasks for user %s: %w", userID, err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var (
			t            task.Task
			status, prio int32
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &status, &prio, &t.Assignee, &t.CreatedAt, &t.UpdatedAt, &t.Tags); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		if t.Status, err = task.StatusFromWire(status); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		if t.Priority, err = task.PriorityFromWire(prio); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

// AllTasks returns the full corpus in insertion order.
func (s *PostgresStore) AllTasks(ctx context.Context) ([]task.Task, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT task_id, title, description, status, priority, assignee, created_at, updated_at, tags
		 FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query all tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var (
			t            task.Task
			status, prio int32
		)
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &status, &prio, &t.Assignee, &t.CreatedAt, &t.UpdatedAt, &t.Tags); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}
		if t.Status, err = task.StatusFromWire(status); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		if t.Priority, err = task.PriorityFromWire(prio); err != nil {
			return nil, fmt.Errorf("task %s: %w", t.ID, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate task rows: %w", err)
	}
	return tasks, nil
}

var _ task.Store = (*PostgresStore)(nil)
