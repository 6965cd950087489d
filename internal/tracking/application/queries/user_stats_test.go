package queries

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/felixgeelhaar/taskstream/internal/tracking/application/services"
	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) TasksForUser(ctx context.Context, userID string) ([]task.Task, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.Task), args.Error(1)
}

func (m *mockStore) AllTasks(ctx context.Context) ([]task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]task.Task), args.Error(1)
}

type mapCache struct {
	entries map[string]services.UserStats
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]services.UserStats)}
}

func (c *mapCache) Get(_ context.Context, userID string) (services.UserStats, bool) {
	stats, ok := c.entries[userID]
	return stats, ok
}

func (c *mapCache) Set(_ context.Context, userID string, stats services.UserStats) {
	c.entries[userID] = stats
}

func statsFixture(n int) []task.Task {
	tasks := make([]task.Task, 0, n)
	for i := 0; i < n; i++ {
		status := task.StatusPending
		if i%2 == 0 {
			status = task.StatusCompleted
		}
		tasks = append(tasks, task.Task{
			ID:        string(rune('a' + i)),
			Status:    status,
			Assignee:  "user_001",
			CreatedAt: 1700000000,
			UpdatedAt: 1700000000,
		})
	}
	return tasks
}

func TestUserStatsHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("computes stats from store", func(t *testing.T) {
		store := new(mockStore)
		store.On("TasksForUser", ctx, "user_001").Return(statsFixture(4), nil)

		handler := NewUserStatsHandler(store, services.NewStatsAggregator(), nil, nil)
		stats, err := handler.Handle(ctx, UserStatsQuery{UserID: "user_001"})

		require.NoError(t, err)
		assert.Equal(t, "user_001", stats.UserID)
		assert.Equal(t, 4, stats.TotalTasks)
		assert.Equal(t, 2, stats.CompletedTasks)
		assert.Equal(t, 50.0, stats.CompletionRate)
		store.AssertExpectations(t)
	})

	t.Run("empty task set means user not found", func(t *testing.T) {
		store := new(mockStore)
		store.On("TasksForUser", ctx, "ghost").Return([]task.Task{}, nil)

		handler := NewUserStatsHandler(store, services.NewStatsAggregator(), nil, nil)
		_, err := handler.Handle(ctx, UserStatsQuery{UserID: "ghost"})

		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("store failure is not conflated with not found", func(t *testing.T) {
		store := new(mockStore)
		store.On("TasksForUser", ctx, "user_001").Return(nil, errors.New("disk on fire"))

		handler := NewUserStatsHandler(store, services.NewStatsAggregator(), nil, nil)
		_, err := handler.Handle(ctx, UserStatsQuery{UserID: "user_001"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		store := new(mockStore)
		cache := newMapCache()
		cache.Set(ctx, "user_001", services.UserStats{UserID: "user_001", TotalTasks: 7})

		handler := NewUserStatsHandler(store, services.NewStatsAggregator(), cache, nil)
		stats, err := handler.Handle(ctx, UserStatsQuery{UserID: "user_001"})

		require.NoError(t, err)
		assert.Equal(t, 7, stats.TotalTasks)
		store.AssertNotCalled(t, "TasksForUser", mock.Anything, mock.Anything)
	})

	t.Run("cache miss populates the cache", func(t *testing.T) {
		store := new(mockStore)
		store.On("TasksForUser", ctx, "user_001").Return(statsFixture(2), nil)
		cache := newMapCache()

		handler := NewUserStatsHandler(store, services.NewStatsAggregator(), cache, nil)
		_, err := handler.Handle(ctx, UserStatsQuery{UserID: "user_001"})

		require.NoError(t, err)
		cached, ok := cache.Get(ctx, "user_001")
		require.True(t, ok)
		assert.Equal(t, 2, cached.TotalTasks)
	})

	t.Run("not found is not cached", func(t *testing.T) {
		store := new(mockStore)
		store.On("TasksForUser", ctx, "ghost").Return([]task.Task{}, nil)
		cache := newMapCache()

		handler := NewUserStatsHandler(store, services.NewStatsAggregator(), cache, nil)
		_, err := handler.Handle(ctx, UserStatsQuery{UserID: "ghost"})

		assert.ErrorIs(t, err, ErrUserNotFound)
		_, ok := cache.Get(ctx, "ghost")
		assert.False(t, ok)
	})
}
