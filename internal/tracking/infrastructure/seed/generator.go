// Package seed generates a sample task corpus for demos and local development.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

var sampleTitles = []string{
	"Implement new payment feature",
	"Fix login bug in the auth module",
	"Write API documentation",
	"Review open pull requests",
	"Optimize API response times",
	"Add unit tests for critical paths",
	"Upgrade project dependencies",
	"Build the analytics dashboard",
	"Integrate the notification service",
	"Refactor legacy modules",
}

var sampleDescriptions = []string{
	"Implement a new module for processing payments end to end",
	"Users cannot sign in after the latest deployment",
	"Document every endpoint exposed by the gRPC service",
	"Check outstanding PRs for code style and test coverage",
	"Bring p99 latency of the API down by 30 percent",
	"Cover the critical modules of the system with tests",
	"Bump all packages to their latest stable versions",
	"Visualize system usage metrics for the team",
	"Wire the backend up to the notification service",
	"Improve readability and maintainability of older code",
}

var sampleTags = []string{
	"backend", "frontend", "devops", "database",
	"security", "ui/ux", "testing", "documentation",
}

// DefaultUsers is the user set a generated corpus is spread across.
var DefaultUsers = []string{"user_001", "user_002", "user_003", "user_004"}

// Config controls corpus generation.
type Config struct {
	// Count is the number of tasks to generate.
	Count int
	// Users receives the generated tasks round-robin by random choice.
	Users []string
	// Now anchors the timestamp window; zero means time.Now().
	Now time.Time
	// Seed makes generation reproducible. The same seed yields the same corpus.
	Seed int64
}

// DefaultConfig sizes a corpus suitable for demos and local development.
func DefaultConfig() Config {
	return Config{
		Count: 100,
		Users: DefaultUsers,
		Seed:  1,
	}
}

// Generate produces a corpus satisfying the store invariants: unique task
// ids, exactly one assignee per task, 1-3 tags, created within the last 30
// days and updated at most 7 days after creation.
func Generate(cfg Config) []task.Task {
	if cfg.Count <= 0 {
		return nil
	}
	if len(cfg.Users) == 0 {
		cfg.Users = DefaultUsers
	}
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	tasks := make([]task.Task, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		created := now.Unix() - int64(rng.Intn(30*24*3600))
		updated := created + int64(rng.Intn(7*24*3600))

		tasks = append(tasks, task.Task{
			ID:          fmt.Sprintf("task_%03d", i),
			Title:       sampleTitles[rng.Intn(len(sampleTitles))],
			Description: sampleDescriptions[rng.Intn(len(sampleDescriptions))],
			Status:      task.Status(rng.Intn(4)),
			Priority:    task.Priority(rng.Intn(4)),
			Assignee:    cfg.Users[rng.Intn(len(cfg.Users))],
			CreatedAt:   created,
			UpdatedAt:   updated,
			Tags:        pickTags(rng),
		})
	}

	return tasks
}

// pickTags draws 1-3 distinct tags.
func pickTags(rng *rand.Rand) []string {
	n := 1 + rng.Intn(3)
	perm := rng.Perm(len(sampleTags))
	tags := make([]string, 0, n)
	for _, idx := range perm[:n] {
		tags = append(tags, sampleTags[idx])
	}
	return tags
}
