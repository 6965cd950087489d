package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

func taskWithStatus(id string, s task.Status) task.Task {
	return task.Task{
		ID:        id,
		Title:     "t",
		Status:    s,
		Assignee:  "user_001",
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
	}
}

func TestStatsAggregatorCompute(t *testing.T) {
	agg := NewStatsAggregator()

	t.Run("empty input yields zero stats", func(t *testing.T) {
		stats := agg.Compute("user_001", nil)
		assert.Equal(t, "user_001", stats.UserID)
		assert.Equal(t, 0, stats.TotalTasks)
		assert.Equal(t, 0, stats.PendingTasks)
		assert.Equal(t, 0, stats.InProgressTasks)
		assert.Equal(t, 0, stats.CompletedTasks)
		assert.Equal(t, 0.0, stats.CompletionRate)
	})

	t.Run("counts per status", func(t *testing.T) {
		stats := agg.Compute("user_001", []task.Task{
			taskWithStatus("task_000", task.StatusCompleted),
			taskWithStatus("task_001", task.StatusPending),
		})
		assert.Equal(t, 2, stats.TotalTasks)
		assert.Equal(t, 1, stats.PendingTasks)
		assert.Equal(t, 0, stats.InProgressTasks)
		assert.Equal(t, 1, stats.CompletedTasks)
		assert.Equal(t, 50.0, stats.CompletionRate)
	})

	t.Run("blocked tasks count toward total only", func(t *testing.T) {
		stats := agg.Compute("user_002", []task.Task{
			taskWithStatus("task_000", task.StatusBlocked),
			taskWithStatus("task_001", task.StatusBlocked),
			taskWithStatus("task_002", task.StatusCompleted),
		})
		assert.Equal(t, 3, stats.TotalTasks)
		assert.Equal(t, 0, stats.PendingTasks)
		assert.Equal(t, 0, stats.InProgressTasks)
		assert.Equal(t, 1, stats.CompletedTasks)
		assert.InDelta(t, 33.33, stats.CompletionRate, 0.001)
	})

	t.Run("rate rounds half up to two decimals", func(t *testing.T) {
		// 1/3 completed: 33.333... rounds to 33.33
		stats := agg.Compute("u", []task.Task{
			taskWithStatus("a", task.StatusCompleted),
			taskWithStatus("b", task.StatusPending),
			taskWithStatus("c", task.StatusPending),
		})
		assert.Equal(t, 33.33, stats.CompletionRate)

		// 2/3 completed: 66.666... rounds to 66.67
		stats = agg.Compute("u", []task.Task{
			taskWithStatus("a", task.StatusCompleted),
			taskWithStatus("b", task.StatusCompleted),
			taskWithStatus("c", task.StatusPending),
		})
		assert.Equal(t, 66.67, stats.CompletionRate)
	})

	t.Run("rate stays within bounds", func(t *testing.T) {
		none := agg.Compute("u", []task.Task{taskWithStatus("a", task.StatusPending)})
		assert.Equal(t, 0.0, none.CompletionRate)

		all := agg.Compute("u", []task.Task{
			taskWithStatus("a", task.StatusCompleted),
			taskWithStatus("b", task.StatusCompleted),
		})
		assert.Equal(t, 100.0, all.CompletionRate)
	})
}
