package task

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTaskID     = errors.New("task id cannot be empty")
	ErrEmptyAssignee   = errors.New("task assignee cannot be empty")
	ErrTimestampOrder  = errors.New("task updated_at precedes created_at")
	ErrUnknownStatus   = errors.New("unknown status code")
	ErrUnknownPriority = errors.New("unknown priority code")
)

// Status represents the task lifecycle state.
type Status int

const (
	StatusPending Status = iota
	StatusInProgress
	StatusCompleted
	StatusBlocked
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// Wire returns the integer code transmitted on the wire.
func (s Status) Wire() int32 { return int32(s) }

// StatusFromWire maps a wire code back to a Status. Codes outside the
// closed set are rejected rather than silently defaulted.
func StatusFromWire(code int32) (Status, error) {
	if code < int32(StatusPending) || code > int32(StatusBlocked) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownStatus, code)
	}
	return Status(code), nil
}

// Priority represents how urgent a task is.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// Wire returns the integer code transmitted on the wire.
func (p Priority) Wire() int32 { return int32(p) }

// PriorityFromWire maps a wire code back to a Priority. Codes outside the
// closed set are rejected rather than silently defaulted.
func PriorityFromWire(code int32) (Priority, error) {
	if code < int32(PriorityLow) || code > int32(PriorityUrgent) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownPriority, code)
	}
	return Priority(code), nil
}

// Task is an immutable snapshot of a unit of work. Once a task enters the
// store it is never mutated for the lifetime of the process.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Assignee    string
	CreatedAt   int64 // Unix seconds
	UpdatedAt   int64 // Unix seconds
	Tags        []string
}

// Validate checks the invariants a task must satisfy before it may be stored.
func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return ErrEmptyTaskID
	}
	if strings.TrimSpace(t.Assignee) == "" {
		return ErrEmptyAssignee
	}
	if t.UpdatedAt < t.CreatedAt {
		return fmt.Errorf("%w: task %s", ErrTimestampOrder, t.ID)
	}
	if _, err := StatusFromWire(t.Status.Wire()); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}
	if _, err := PriorityFromWire(t.Priority.Wire()); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}
	return nil
}
