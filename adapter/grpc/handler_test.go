package grpc

import (
	"context"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/felixgeelhaar/taskstream/gen/taskmanagerpb"
	"github.com/felixgeelhaar/taskstream/internal/tracking/application/queries"
	"github.com/felixgeelhaar/taskstream/internal/tracking/application/services"
	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
	"github.com/felixgeelhaar/taskstream/internal/tracking/infrastructure/persistence"
	"github.com/felixgeelhaar/taskstream/pkg/observability"
)

func fixtureTask(id, assignee string, s task.Status) task.Task {
	return task.Task{
		ID:        id,
		Title:     "title " + id,
		Status:    s,
		Priority:  task.PriorityMedium,
		Assignee:  assignee,
		CreatedAt: 1700000000,
		UpdatedAt: 1700000000,
		Tags:      []string{"backend"},
	}
}

// startTestServer serves the handler over an in-memory connection and
// returns a connected client.
func startTestServer(t *testing.T, store task.Store, metrics observability.Metrics) taskmanagerpb.TaskManagerClient {
	t.Helper()

	handler := NewTaskManagerHandler(
		queries.NewStreamUserTasksHandler(store),
		queries.NewUserStatsHandler(store, services.NewStatsAggregator(), nil, nil),
		nil,
		metrics,
		nil,
	)
	server := NewServer(ServerConfig{StreamWorkers: 4}, handler, nil)

	lis := bufconn.Listen(1024 * 1024)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return taskmanagerpb.NewTaskManagerClient(conn)
}

func seededStore(t *testing.T, tasks ...task.Task) *persistence.MemoryStore {
	t.Helper()
	store := persistence.NewMemoryStore()
	require.NoError(t, store.AddAll(tasks))
	return store
}

func TestGetTasksForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("streams tasks in store order", func(t *testing.T) {
		store := seededStore(t,
			fixtureTask("task_001", "user_001", task.StatusPending),
			fixtureTask("task_002", "user_002", task.StatusPending),
			fixtureTask("task_003", "user_001", task.StatusCompleted),
		)
		client := startTestServer(t, store, nil)

		stream, err := client.GetTasksForUser(ctx, &taskmanagerpb.UserRequest{UserId: "user_001"})
		require.NoError(t, err)

		var ids []string
		for {
			msg, err := stream.Recv()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			ids = append(ids, msg.GetTaskId())
		}
		assert.Equal(t, []string{"task_001", "task_003"}, ids)
	})

	t.Run("unknown user gets an empty stream, not an error", func(t *testing.T) {
		store := seededStore(t, fixtureTask("task_001", "user_001", task.StatusPending))
		client := startTestServer(t, store, nil)

		stream, err := client.GetTasksForUser(ctx, &taskmanagerpb.UserRequest{UserId: "ghost"})
		require.NoError(t, err)

		_, err = stream.Recv()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("empty user_id is invalid", func(t *testing.T) {
		client := startTestServer(t, seededStore(t), nil)

		stream, err := client.GetTasksForUser(ctx, &taskmanagerpb.UserRequest{})
		require.NoError(t, err)

		_, err = stream.Recv()
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})

	t.Run("task fields survive the wire", func(t *testing.T) {
		in := task.Task{
			ID:          "task_042",
			Title:       "Fix login bug",
			Description: "Users cannot sign in",
			Status:      task.StatusInProgress,
			Priority:    task.PriorityUrgent,
			Assignee:    "user_001",
			CreatedAt:   1700000000,
			UpdatedAt:   1700003600,
			Tags:        []string{"backend", "security"},
		}
		client := startTestServer(t, seededStore(t, in), nil)

		stream, err := client.GetTasksForUser(ctx, &taskmanagerpb.UserRequest{UserId: "user_001"})
		require.NoError(t, err)

		msg, err := stream.Recv()
		require.NoError(t, err)
		assert.Equal(t, "task_042", msg.GetTaskId())
		assert.Equal(t, "Fix login bug", msg.GetTitle())
		assert.Equal(t, "Users cannot sign in", msg.GetDescription())
		assert.Equal(t, int32(1), msg.GetStatus())
		assert.Equal(t, int32(3), msg.GetPriority())
		assert.Equal(t, "user_001", msg.GetAssignee())
		assert.Equal(t, int64(1700000000), msg.GetCreatedAt())
		assert.Equal(t, int64(1700003600), msg.GetUpdatedAt())
		assert.Equal(t, []string{"backend", "security"}, msg.GetTags())
	})

	t.Run("client cancellation aborts the stream", func(t *testing.T) {
		tasks := make([]task.Task, 0, 100)
		for i := 0; i < 100; i++ {
			tasks = append(tasks, fixtureTask(taskID(i), "user_001", task.StatusPending))
		}
		client := startTestServer(t, seededStore(t, tasks...), nil)

		streamCtx, cancel := context.WithCancel(ctx)
		stream, err := client.GetTasksForUser(streamCtx, &taskmanagerpb.UserRequest{UserId: "user_001"})
		require.NoError(t, err)

		_, err = stream.Recv()
		require.NoError(t, err)
		cancel()

		// The stream must fail promptly instead of draining 99 more tasks.
		deadline := time.After(2 * time.Second)
		for {
			select {
			case <-deadline:
				t.Fatal("stream did not terminate after cancellation")
			default:
			}
			_, err = stream.Recv()
			if err != nil {
				break
			}
		}
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.Canceled, st.Code())
	})

	t.Run("records streamed task metrics", func(t *testing.T) {
		metrics := observability.NewInMemoryMetrics()
		store := seededStore(t,
			fixtureTask("task_001", "user_001", task.StatusPending),
			fixtureTask("task_002", "user_001", task.StatusPending),
		)
		client := startTestServer(t, store, metrics)

		stream, err := client.GetTasksForUser(ctx, &taskmanagerpb.UserRequest{UserId: "user_001"})
		require.NoError(t, err)
		for {
			if _, err := stream.Recv(); err != nil {
				break
			}
		}

		assert.Equal(t, int64(2), metrics.GetCounter(observability.MetricTasksStreamed, observability.T("user_id", "user_001")))
	})
}

func TestGetUserStats(t *testing.T) {
	ctx := context.Background()

	t.Run("returns aggregate stats", func(t *testing.T) {
		store := seededStore(t,
			fixtureTask("task_001", "user_001", task.StatusCompleted),
			fixtureTask("task_002", "user_001", task.StatusPending),
			fixtureTask("task_003", "user_001", task.StatusInProgress),
			fixtureTask("task_004", "user_001", task.StatusCompleted),
			fixtureTask("task_005", "user_002", task.StatusPending),
		)
		client := startTestServer(t, store, nil)

		stats, err := client.GetUserStats(ctx, &taskmanagerpb.UserRequest{UserId: "user_001"})
		require.NoError(t, err)
		assert.Equal(t, "user_001", stats.GetUserId())
		assert.Equal(t, int32(4), stats.GetTotalTasks())
		assert.Equal(t, int32(1), stats.GetPendingTasks())
		assert.Equal(t, int32(1), stats.GetInProgressTasks())
		assert.Equal(t, int32(2), stats.GetCompletedTasks())
		assert.Equal(t, 50.0, stats.GetCompletionRate())
	})

	t.Run("user without tasks is NOT_FOUND", func(t *testing.T) {
		store := seededStore(t, fixtureTask("task_001", "user_001", task.StatusPending))
		client := startTestServer(t, store, nil)

		_, err := client.GetUserStats(ctx, &taskmanagerpb.UserRequest{UserId: "ghost"})
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.NotFound, st.Code())
		assert.Contains(t, st.Message(), "ghost")
	})

	t.Run("empty user_id is invalid", func(t *testing.T) {
		client := startTestServer(t, seededStore(t), nil)

		_, err := client.GetUserStats(ctx, &taskmanagerpb.UserRequest{})
		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.InvalidArgument, st.Code())
	})
}

func taskID(i int) string {
	return fmt.Sprintf("task_%03d", i)
}
