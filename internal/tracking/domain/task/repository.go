package task

import "context"

// Store answers read-only queries over the task corpus. Implementations must
// return tasks in stable insertion order, so that repeated reads without
// intervening mutation yield identical sequences.
//
// The serving path never writes; corpora are loaded once at startup. A future
// mutation API would require implementations to adopt a single-writer,
// multiple-reader discipline.
type Store interface {
	// TasksForUser returns every task whose assignee equals userID,
	// in insertion order. An unknown user yields an empty slice, not an error.
	TasksForUser(ctx context.Context, userID string) ([]Task, error)

	// AllTasks returns the full corpus in insertion order.
	AllTasks(ctx context.Context) ([]Task, error)
}
