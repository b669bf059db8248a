package notifications

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TaskEventType classifies a task lifecycle notification
type TaskEventType string

const (
	TaskEventCreated   TaskEventType = "task.created"
	TaskEventAssigned  TaskEventType = "task.assigned"
	TaskEventCompleted TaskEventType = "task.completed"
)

// TaskEvent is the message published for each task lifecycle change
type TaskEvent struct {
	ID         string        `json:"id"`
	Type       TaskEventType `json:"type"`
	TaskID     int           `json:"task_id"`
	Title      string        `json:"title"`
	AssignedTo *int          `json:"assigned_to,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// NewTaskEvent stamps a new event with an id and the current time
func NewTaskEvent(eventType TaskEventType, taskID int, title string, assignedTo *int) *TaskEvent {
	return &TaskEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		TaskID:     taskID,
		Title:      title,
		AssignedTo: assignedTo,
		OccurredAt: time.Now().UTC(),
	}
}

// ToJSON serializes the event for the wire
func (e *TaskEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events for one task to the same partition
func (e *TaskEvent) PartitionKey() string {
	return strconv.Itoa(e.TaskID)
}
