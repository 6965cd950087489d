package services

import (
	"math"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

// UserStats holds aggregate completion metrics derived from a user's tasks.
// It is computed on demand and never stored.
type UserStats struct {
	UserID          string
	TotalTasks      int
	PendingTasks    int
	InProgressTasks int
	CompletedTasks  int
	CompletionRate  float64 // percentage, rounded to 2 decimal places
}

// StatsAggregator derives completion metrics from a task sequence.
type StatsAggregator struct{}

// NewStatsAggregator creates a new StatsAggregator.
func NewStatsAggregator() *StatsAggregator {
	return &StatsAggregator{}
}

// Compute counts tasks per status and derives the completion rate.
// It is a pure function of its input: an empty sequence yields zero counts
// and a rate of 0.0, never an error. Rounding is half-up via math.Round.
func (a *StatsAggregator) Compute(userID string, tasks []task.Task) UserStats {
	stats := UserStats{UserID: userID, TotalTasks: len(tasks)}

	for _, t := range tasks {
		switch t.Status {
		case task.StatusPending:
			stats.PendingTasks++
		case task.StatusInProgress:
			stats.InProgressTasks++
		case task.StatusCompleted:
			stats.CompletedTasks++
		}
	}

	if stats.TotalTasks > 0 {
		rate := float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
		stats.CompletionRate = math.Round(rate*100) / 100
	}

	return stats
}
