// Package eventbus publishes query audit events to a message broker.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Routing keys for query events.
const (
	RoutingKeyTasksStreamed = "tasks.streamed"
	RoutingKeyStatsServed   = "stats.served"
)

// Publisher sends serialized events to a broker.
type Publisher interface {
	// Publish sends a message with the given routing key.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close releases broker resources.
	Close() error
}

// QueryEvent describes one served query, emitted after the response is
// complete. Purely observational; the request outcome never depends on it.
type QueryEvent struct {
	UserID     string `json:"user_id"`
	TasksSent  int    `json:"tasks_sent,omitempty"`
	NotFound   bool   `json:"not_found,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	ServedAt   int64  `json:"served_at"`
}

// PublishQueryEvent serializes and publishes a query event.
func PublishQueryEvent(ctx context.Context, p Publisher, routingKey string, event QueryEvent) error {
	if event.ServedAt == 0 {
		event.ServedAt = time.Now().Unix()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode query event: %w", err)
	}
	return p.Publish(ctx, routingKey, payload)
}
