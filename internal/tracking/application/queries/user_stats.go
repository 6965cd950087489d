package queries

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/taskstream/internal/tracking/application/services"
	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

// ErrUserNotFound is returned when the filtered task set for a user is empty.
// A user exists only by virtue of having at least one task assigned.
var ErrUserNotFound = errors.New("user not found")

// StatsCache caches computed stats for a user. Implementations may miss
// freely; the handler falls back to the store on every miss.
type StatsCache interface {
	Get(ctx context.Context, userID string) (services.UserStats, bool)
	Set(ctx context.Context, userID string, stats services.UserStats)
}

// UserStatsQuery contains the parameters for the stats query.
type UserStatsQuery struct {
	UserID string
}

// UserStatsHandler handles the UserStatsQuery.
type UserStatsHandler struct {
	store      task.Store
	aggregator *services.StatsAggregator
	cache      StatsCache
	logger     *slog.Logger
}

// NewUserStatsHandler creates a new UserStatsHandler. cache may be nil.
func NewUserStatsHandler(store task.Store, aggregator *services.StatsAggregator, cache StatsCache, logger *slog.Logger) *UserStatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStatsHandler{
		store:      store,
		aggregator: aggregator,
		cache:      cache,
		logger:     logger,
	}
}

// Handle executes the UserStatsQuery. A user with no tasks fails with
// ErrUserNotFound; the aggregator itself accepts empty input, the not-found
// policy lives here.
func (h *UserStatsHandler) Handle(ctx context.Context, query UserStatsQuery) (services.UserStats, error) {
	if h.cache != nil {
		if stats, ok := h.cache.Get(ctx, query.UserID); ok {
			h.logger.Debug("stats cache hit", "user_id", query.UserID)
			return stats, nil
		}
	}

	tasks, err := h.store.TasksForUser(ctx, query.UserID)
	if err != nil {
		return services.UserStats{}, fmt.Errorf("query task store: %w", err)
	}

	if len(tasks) == 0 {
		return services.UserStats{}, fmt.Errorf("%w: %s", ErrUserNotFound, query.UserID)
	}

	stats := h.aggregator.Compute(query.UserID, tasks)

	if h.cache != nil {
		h.cache.Set(ctx, query.UserID, stats)
	}

	return stats, nil
}
