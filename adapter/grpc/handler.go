// Package grpc exposes the task-tracking service over gRPC.
package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/felixgeelhaar/taskstream/gen/taskmanagerpb"
	"github.com/felixgeelhaar/taskstream/internal/tracking/application/queries"
	"github.com/felixgeelhaar/taskstream/internal/tracking/infrastructure/eventbus"
	"github.com/felixgeelhaar/taskstream/pkg/observability"
)

// TaskManagerHandler maps incoming gRPC requests to the query handlers.
//
// It implements the [taskmanagerpb.TaskManagerServer] interface.
type TaskManagerHandler struct {
	taskmanagerpb.UnimplementedTaskManagerServer

	tasks   *queries.StreamUserTasksHandler
	stats   *queries.UserStatsHandler
	events  eventbus.Publisher
	metrics observability.Metrics
	logger  *slog.Logger
}

// NewTaskManagerHandler creates a new TaskManagerHandler.
func NewTaskManagerHandler(
	tasks *queries.StreamUserTasksHandler,
	stats *queries.UserStatsHandler,
	events eventbus.Publisher,
	metrics observability.Metrics,
	logger *slog.Logger,
) *TaskManagerHandler {
	if events == nil {
		events = eventbus.NewNoopPublisher(logger)
	}
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskManagerHandler{
		tasks:   tasks,
		stats:   stats,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// GetTasksForUser handles the server-streaming 'GetTasksForUser' gRPC method.
//
// Tasks are emitted one message at a time in store order; each Send suspends
// until HTTP/2 flow control signals the client is ready, so a slow consumer
// never forces the server to buffer the result set. A user with no tasks
// terminates the stream cleanly after zero items.
func (h *TaskManagerHandler) GetTasksForUser(req *taskmanagerpb.UserRequest, stream grpc.ServerStreamingServer[taskmanagerpb.Task]) error {
	userID := req.GetUserId()
	if userID == "" {
		return status.Error(codes.InvalidArgument, "user_id cannot be empty")
	}

	ctx := observability.WithUserID(stream.Context(), userID)
	start := time.Now()

	h.logger.Info("streaming tasks", "user_id", userID)

	out, errc := h.tasks.Handle(ctx, queries.UserTasksQuery{UserID: userID})

	sent := 0
	for t := range out {
		if err := stream.Send(toProtoTask(t)); err != nil {
			h.logger.Warn("stream send failed",
				"user_id", userID,
				"tasks_sent", sent,
				"error", err,
			)
			return err
		}
		sent++
	}

	if err := <-errc; err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			h.logger.Info("stream cancelled by client",
				"user_id", userID,
				"tasks_sent", sent,
			)
			return status.FromContextError(err).Err()
		}
		h.logger.Error("task store query failed", "user_id", userID, "error", err)
		return status.Error(codes.Internal, "failed to read task store")
	}

	duration := time.Since(start)
	h.metrics.Counter(observability.MetricTasksStreamed, int64(sent), observability.T("user_id", userID))
	h.metrics.Timing(observability.MetricRequestDuration, duration, observability.T("method", "GetTasksForUser"))

	h.publishEvent(ctx, eventbus.RoutingKeyTasksStreamed, eventbus.QueryEvent{
		UserID:     userID,
		TasksSent:  sent,
		DurationMS: duration.Milliseconds(),
	})

	h.logger.Info("stream complete", "user_id", userID, "tasks_sent", sent)
	return nil
}

// GetUserStats handles the unary 'GetUserStats' gRPC method.
//
// A user with no tasks fails with NOT_FOUND carrying the user id; signaling
// not-found terminates the request with no response message.
func (h *TaskManagerHandler) GetUserStats(ctx context.Context, req *taskmanagerpb.UserRequest) (*taskmanagerpb.UserStats, error) {
	userID := req.GetUserId()
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id cannot be empty")
	}

	ctx = observability.WithUserID(ctx, userID)
	start := time.Now()

	stats, err := h.stats.Handle(ctx, queries.UserStatsQuery{UserID: userID})
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			h.logger.Info("user not found", "user_id", userID)
			h.publishEvent(ctx, eventbus.RoutingKeyStatsServed, eventbus.QueryEvent{
				UserID:     userID,
				NotFound:   true,
				DurationMS: time.Since(start).Milliseconds(),
			})
			return nil, status.Errorf(codes.NotFound, "user %s not found", userID)
		}
		h.logger.Error("stats query failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "failed to compute user stats")
	}

	duration := time.Since(start)
	h.metrics.Counter(observability.MetricStatsServed, 1, observability.T("user_id", userID))
	h.metrics.Timing(observability.MetricRequestDuration, duration, observability.T("method", "GetUserStats"))

	h.publishEvent(ctx, eventbus.RoutingKeyStatsServed, eventbus.QueryEvent{
		UserID:     userID,
		DurationMS: duration.Milliseconds(),
	})

	h.logger.Info("stats served",
		"user_id", userID,
		"total", stats.TotalTasks,
		"completed", stats.CompletedTasks,
		"completion_rate", stats.CompletionRate,
	)
	return toProtoStats(stats), nil
}

func (h *TaskManagerHandler) publishEvent(ctx context.Context, routingKey string, event eventbus.QueryEvent) {
	// Events are observational; a broker failure must not fail the request.
	if err := eventbus.PublishQueryEvent(ctx, h.events, routingKey, event); err != nil {
		h.logger.Warn("query event publish failed", "routing_key", routingKey, "error", err)
	}
}
