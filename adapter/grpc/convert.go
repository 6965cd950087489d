package grpc

import (
	"github.com/felixgeelhaar/taskstream/gen/taskmanagerpb"
	"github.com/felixgeelhaar/taskstream/internal/tracking/application/services"
	"github.com/felixgeelhaar/taskstream/internal/tracking/domain/task"
)

func toProtoTask(t task.Task) *taskmanagerpb.Task {
	return &taskmanagerpb.Task{
		TaskId:      t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.Wire(),
		Assignee:    t.Assignee,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Priority:    t.Priority.Wire(),
		Tags:        t.Tags,
	}
}

func toProtoStats(s services.UserStats) *taskmanagerpb.UserStats {
	return &taskmanagerpb.UserStats{
		UserId:          s.UserID,
		TotalTasks:      int32(s.TotalTasks),
		PendingTasks:    int32(s.PendingTasks),
		InProgressTasks: int32(s.InProgressTasks),
		CompletedTasks:  int32(s.CompletedTasks),
		CompletionRate:  s.CompletionRate,
	}
}
