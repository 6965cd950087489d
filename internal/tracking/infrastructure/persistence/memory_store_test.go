package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

func storeTask(id, assignee string) task.Task {
	return task.Task{
		ID:        id,
		Title:     "t",
		Status:    task.StatusPending,
		Priority:  task.PriorityMedium,
		Assignee:  assignee,
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
	}
}

func TestMemoryStoreAdd(t *testing.T) {
	t.Run("rejects invalid tasks", func(t *testing.T) {
		store := NewMemoryStore()
		err := store.Add(storeTask("", "user_001"))
		assert.ErrorIs(t, err, task.ErrEmptyTaskID)
		assert.Zero(t, store.Len())
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		store := NewMemoryStore()
		require.NoError(t, store.Add(storeTask("task_001", "user_001")))
		err := store.Add(storeTask("task_001", "user_002"))
		assert.ErrorIs(t, err, ErrDuplicateTaskID)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("AddAll stops at the first bad task", func(t *testing.T) {
		store := NewMemoryStore()
		err := store.AddAll([]task.Task{
			storeTask("task_001", "user_001"),
			storeTask("task_001", "user_001"),
			storeTask("task_002", "user_001"),
		})
		assert.ErrorIs(t, err, ErrDuplicateTaskID)
		assert.Equal(t, 1, store.Len())
	})
}

func TestMemoryStoreTasksForUser(t *testing.T) {
	ctx := context.Background()

	store := NewMemoryStore()
	require.NoError(t, store.AddAll([]task.Task{
		storeTask("task_001", "user_001"),
		storeTask("task_002", "user_002"),
		storeTask("task_003", "user_001"),
		storeTask("task_004", "user_001"),
	}))

	t.Run("filters by assignee in insertion order", func(t *testing.T) {
		got, err := store.TasksForUser(ctx, "user_001")
		require.NoError(t, err)
		ids := make([]string, 0, len(got))
		for _, tk := range got {
			ids = append(ids, tk.ID)
		}
		assert.Equal(t, []string{"task_001", "task_003", "task_004"}, ids)
	})

	t.Run("unknown user yields empty slice, not an error", func(t *testing.T) {
		got, err := store.TasksForUser(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("cancelled context is honored", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := store.TasksForUser(cancelled, "user_001")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryStoreAllTasks(t *testing.T) {
	ctx := context.Background()

	store := NewMemoryStore()
	require.NoError(t, store.AddAll([]task.Task{
		storeTask("task_001", "user_001"),
		storeTask("task_002", "user_002"),
	}))

	got, err := store.AllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "task_001", got[0].ID)
	assert.Equal(t, "task_002", got[1].ID)

	// The returned slice is a copy; mutating it must not touch the corpus.
	got[0].Title = "mutated"
	again, err := store.AllTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t", again[0].Title)
}
