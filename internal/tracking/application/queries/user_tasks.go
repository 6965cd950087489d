package queries

import (
	"context"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

// UserTasksQuery contains the parameters for the task stream query.
type UserTasksQuery struct {
	UserID string
}

// StreamUserTasksHandler handles the UserTasksQuery as a pull-based stream.
type StreamUserTasksHandler struct {
	store task.Store
}

// NewStreamUserTasksHandler creates a new StreamUserTasksHandler.
func NewStreamUserTasksHandler(store task.Store) *StreamUserTasksHandler {
	return &StreamUserTasksHandler{store: store}
}

// Handle produces the user's tasks one at a time over a capacity-1 channel,
// in store order. The producer suspends at each item boundary until the
// consumer takes it, which bounds buffering regardless of result size; when
// ctx is cancelled the producer stops promptly and the error channel carries
// ctx.Err().
//
// A user with no tasks yields a channel that closes after zero items with no
// error: an empty stream is a normal terminal state, not a failure.
func (h *StreamUserTasksHandler) Handle(ctx context.Context, query UserTasksQuery) (<-chan task.Task, <-chan error) {
	out := make(chan task.Task, 1)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)

		tasks, err := h.store.TasksForUser(ctx, query.UserID)
		if err != nil {
			errc <- err
			return
		}

		for _, t := range tasks {
			select {
			case out <- t:
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
	}()

	return out, errc
}
