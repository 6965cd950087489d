package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

// ErrDuplicateTaskID is returned when a task with an already-stored id is added.
var ErrDuplicateTaskID = errors.New("duplicate task id")

// MemoryStore implements task.Store with an in-memory, append-at-init corpus.
// A per-user index is maintained at insert time so filter queries are O(k)
// in the size of the user's task set rather than the corpus.
//
// Reads take no lock contention during serving since the corpus is immutable
// once loaded; the mutex guards the init path only.
type MemoryStore struct {
	mu     sync.RWMutex
	tasks  []task.Task
	byUser map[string][]int
	ids    map[string]struct{}
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byUser: make(map[string][]int),
		ids:    make(map[string]struct{}),
	}
}

// Add appends a task to the corpus, validating its invariants and rejecting
// duplicate ids. Intended for startup loading only.
func (s *MemoryStore) Add(t task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[t.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTaskID, t.ID)
	}

	s.ids[t.ID] = struct{}{}
	s.byUser[t.Assignee] = append(s.byUser[t.Assignee], len(s.tasks))
	s.tasks = append(s.tasks, t)
	return nil
}

// AddAll appends a batch of tasks, stopping at the first invalid one.
func (s *MemoryStore) AddAll(tasks []task.Task) error {
	for _, t := range tasks {
		if err := s.Add(t); err != nil {
			return err
		}
	}
	return nil
}

// TasksForUser returns the user's tasks in insertion order.
func (s *MemoryStore) TasksForUser(ctx context.Context, userID string) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	indices := s.byUser[userID]
	result := make([]task.Task, 0, len(indices))
	for _, i := range indices {
		result = append(result, s.tasks[i])
	}
	return result, nil
}

// AllTasks returns the full corpus in insertion order.
func (s *MemoryStore) AllTasks(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]task.Task, len(s.tasks))
	copy(result, s.tasks)
	return result, nil
}

// Len reports the number of stored tasks.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

var _ task.Store = (*MemoryStore)(nil)
