// Package client is the Go client adapter for the taskstream service.
// It decodes wire messages into display-ready records and keeps remote
// not-found, transport failures and decode failures distinguishable.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/felixgeelhaar/taskstream/gen/taskmanagerpb"
)

// Task is a decoded task record with enumerated fields already mapped to
// display labels. It is what the presentation layer consumes.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      string
	Priority    string
	Assignee    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Tags        []string
}

// UserStats is a decoded statistics record.
type UserStats struct {
	UserID          string
	TotalTasks      int
	PendingTasks    int
	InProgressTasks int
	CompletedTasks  int
	CompletionRate  float64
}

// Config configures the client.
type Config struct {
	// Target is the server address, e.g. "localhost:50053".
	Target string

	// RequestTimeout bounds the unary stats call. Zero disables the deadline.
	RequestTimeout time.Duration
}

// Client issues requests against a taskstream server.
type Client struct {
	conn    *grpc.ClientConn
	stub    taskmanagerpb.TaskManagerClient
	breaker *gobreaker.CircuitBreaker[*taskmanagerpb.UserStats]
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a client connected to cfg.Target.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := grpc.NewClient(cfg.Target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("create client for %s: %w", cfg.Target, err)
	}

	breaker := gobreaker.NewCircuitBreaker[*taskmanagerpb.UserStats](gobreaker.Settings{
		Name:    "taskstream-stats",
		Timeout: 10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &Client{
		conn:    conn,
		stub:    taskmanagerpb.NewTaskManagerClient(conn),
		breaker: breaker,
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// TaskStream is a lazy, finite sequence of decoded tasks. It is not
// restartable; a fresh stream requires a new call.
type TaskStream struct {
	stream grpc.ServerStreamingClient[taskmanagerpb.Task]
}

// Recv returns the next decoded task. It returns io.EOF when the stream has
// completed; an empty stream hits io.EOF on the first call, which callers
// must treat as "no tasks", never as a failure.
func (s *TaskStream) Recv() (Task, error) {
	msg, err := s.stream.Recv()
	if err == io.EOF {
		return Task{}, io.EOF
	}
	if err != nil {
		return Task{}, classifyRPCError("GetTasksForUser", err)
	}
	return decodeTask(msg)
}

// StreamTasksForUser requests the user's tasks as a stream. Cancelling ctx
// aborts the stream and releases the server-side producer.
func (c *Client) StreamTasksForUser(ctx context.Context, userID string) (*TaskStream, error) {
	stream, err := c.stub.GetTasksForUser(ctx, &taskmanagerpb.UserRequest{UserId: userID})
	if err != nil {
		return nil, classifyRPCError("GetTasksForUser", err)
	}
	return &TaskStream{stream: stream}, nil
}

// FetchUserStats requests aggregate completion statistics for the user.
// A user without tasks yields an error matching ErrUserNotFound.
func (c *Client) FetchUserStats(ctx context.Context, userID string) (UserStats, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msg, err := c.breaker.Execute(func() (*taskmanagerpb.UserStats, error) {
		return c.stub.GetUserStats(ctx, &taskmanagerpb.UserRequest{UserId: userID})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return UserStats{}, &TransportError{Op: "GetUserStats", Err: err}
		}
		return UserStats{}, classifyRPCError("GetUserStats", err)
	}

	return UserStats{
		UserID:          msg.GetUserId(),
		TotalTasks:      int(msg.GetTotalTasks()),
		PendingTasks:    int(msg.GetPendingTasks()),
		InProgressTasks: int(msg.GetInProgressTasks()),
		CompletedTasks:  int(msg.GetCompletedTasks()),
		CompletionRate:  msg.GetCompletionRate(),
	}, nil
}

func decodeTask(msg *taskmanagerpb.Task) (Task, error) {
	if msg.GetTaskId() == "" {
		return Task{}, &DecodeError{Field: "task_id", Err: errors.New("missing task id")}
	}

	return Task{
		ID:          msg.GetTaskId(),
		Title:       msg.GetTitle(),
		Description: msg.GetDescription(),
		Status:      StatusLabel(msg.GetStatus()),
		Priority:    PriorityLabel(msg.GetPriority()),
		Assignee:    msg.GetAssignee(),
		CreatedAt:   time.Unix(msg.GetCreatedAt(), 0),
		UpdatedAt:   time.Unix(msg.GetUpdatedAt(), 0),
		Tags:        msg.GetTags(),
	}, nil
}
