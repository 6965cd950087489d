package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/taskstream/gen/taskmanagerpb"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "PENDING", StatusLabel(0))
	assert.Equal(t, "IN_PROGRESS", StatusLabel(1))
	assert.Equal(t, "COMPLETED", StatusLabel(2))
	assert.Equal(t, "BLOCKED", StatusLabel(3))
	assert.Equal(t, UnknownLabel, StatusLabel(4))
	assert.Equal(t, UnknownLabel, StatusLabel(-1))
}

func TestPriorityLabel(t *testing.T) {
	assert.Equal(t, "LOW", PriorityLabel(0))
	assert.Equal(t, "MEDIUM", PriorityLabel(1))
	assert.Equal(t, "HIGH", PriorityLabel(2))
	assert.Equal(t, "URGENT", PriorityLabel(3))
	assert.Equal(t, UnknownLabel, PriorityLabel(42))
}

func TestDecodeTask(t *testing.T) {
	t.Run("decodes a full message", func(t *testing.T) {
		got, err := decodeTask(&taskmanagerpb.Task{
			TaskId:      "task_001",
			Title:       "Fix login bug",
			Description: "Users cannot sign in",
			Status:      1,
			Priority:    3,
			Assignee:    "user_001",
			CreatedAt:   1700000000,
			UpdatedAt:   1700003600,
			Tags:        []string{"backend"},
		})
		require.NoError(t, err)
		assert.Equal(t, "task_001", got.ID)
		assert.Equal(t, "IN_PROGRESS", got.Status)
		assert.Equal(t, "URGENT", got.Priority)
		assert.Equal(t, time.Unix(1700000000, 0), got.CreatedAt)
		assert.Equal(t, time.Unix(1700003600, 0), got.UpdatedAt)
		assert.Equal(t, []string{"backend"}, got.Tags)
	})

	t.Run("out-of-range codes are labeled, not failed", func(t *testing.T) {
		got, err := decodeTask(&taskmanagerpb.Task{
			TaskId:   "task_001",
			Status:   99,
			Priority: -7,
		})
		require.NoError(t, err)
		assert.Equal(t, UnknownLabel, got.Status)
		assert.Equal(t, UnknownLabel, got.Priority)
	})

	t.Run("missing task id is a decode failure", func(t *testing.T) {
		_, err := decodeTask(&taskmanagerpb.Task{Title: "no id"})
		var decode *DecodeError
		require.ErrorAs(t, err, &decode)
		assert.Equal(t, "task_id", decode.Field)
	})
}
