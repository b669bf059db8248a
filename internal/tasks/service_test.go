package tasks

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"taskhub/internal/notifications"

	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository with soft-delete semantics
type fakeRepository struct {
	nextID  int
	tasks   map[int]*Task
	deleted map[int]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextID:  1,
		tasks:   make(map[int]*Task),
		deleted: make(map[int]bool),
	}
}

func (r *fakeRepository) Create(ctx context.Context, task *Task) error {
	task.ID = r.nextID
	r.nextID++
	task.CreatedAt = time.Now().UTC()
	task.UpdatedAt = task.CreatedAt
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id int) (*Task, error) {
	task, ok := r.tasks[id]
	if !ok || r.deleted[id] {
		return nil, ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (r *fakeRepository) Update(ctx context.Context, task *Task) error {
	if _, ok := r.tasks[task.ID]; !ok || r.deleted[task.ID] {
		return ErrTaskNotFound
	}
	task.UpdatedAt = time.Now().UTC()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id int) error {
	if _, ok := r.tasks[id]; !ok || r.deleted[id] {
		return ErrTaskNotFound
	}
	r.deleted[id] = true
	return nil
}

func (r *fakeRepository) List(ctx context.Context, query TaskQuery) ([]Task, int64, error) {
	var result []Task
	for id, task := range r.tasks {
		if r.deleted[id] {
			continue
		}
		if query.Status != nil && (task.Status == nil || *task.Status != *query.Status) {
			continue
		}
		if query.Title != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(query.Title)) {
			continue
		}
		result = append(result, *task)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

// capturingProducer records published events
type capturingProducer struct {
	events []*notifications.TaskEvent
}

func (p *capturingProducer) PublishTaskEvent(ctx context.Context, event *notifications.TaskEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *capturingProducer) Close() error { return nil }

func (p *capturingProducer) types() []notifications.TaskEventType {
	var result []notifications.TaskEventType
	for _, e := range p.events {
		result = append(result, e.Type)
	}
	return result
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func statusPtr(st TaskStatus) *TaskStatus { return &st }

func priorityPtr(p PriorityLevel) *PriorityLevel { return &p }

func TestTaskCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults status to ToDo", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil, nil)

		task, err := svc.Create(ctx, &CreateTaskRequest{Title: "Restock shelves"})
		require.NoError(t, err)
		require.NotNil(t, task.Status)
		require.Equal(t, StatusToDo, *task.Status)
		require.Nil(t, task.CompletedAt)
	})

	t.Run("creating done stamps completed_at", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil, nil)

		task, err := svc.Create(ctx, &CreateTaskRequest{
			Title:  "Already finished",
			Status: statusPtr(StatusDone),
		})
		require.NoError(t, err)
		require.NotNil(t, task.CompletedAt)
	})

	t.Run("rejects unknown enums", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil, nil)

		_, err := svc.Create(ctx, &CreateTaskRequest{Title: "x", Status: statusPtr("Cancelled")})
		require.ErrorIs(t, err, ErrInvalidStatus)

		_, err = svc.Create(ctx, &CreateTaskRequest{Title: "x", PriorityLevel: priorityPtr("Urgent")})
		require.ErrorIs(t, err, ErrInvalidPriority)
	})

	t.Run("publishes created and assigned events", func(t *testing.T) {
		producer := &capturingProducer{}
		svc := NewService(newFakeRepository(), producer, nil)

		_, err := svc.Create(ctx, &CreateTaskRequest{Title: "Assigned work", AssignedTo: intPtr(3)})
		require.NoError(t, err)
		require.Equal(t, []notifications.TaskEventType{
			notifications.TaskEventCreated,
			notifications.TaskEventAssigned,
		}, producer.types())
	})
}

func TestTaskUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("transition to done stamps completed_at and publishes", func(t *testing.T) {
		producer := &capturingProducer{}
		svc := NewService(newFakeRepository(), producer, nil)

		task, err := svc.Create(ctx, &CreateTaskRequest{Title: "Fix freezer"})
		require.NoError(t, err)

		updated, err := svc.Update(ctx, task.ID, &UpdateTaskRequest{Status: statusPtr(StatusDone)})
		require.NoError(t, err)
		require.NotNil(t, updated.CompletedAt)
		require.Contains(t, producer.types(), notifications.TaskEventCompleted)
	})

	t.Run("transition away from done clears completed_at", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil, nil)

		task, err := svc.Create(ctx, &CreateTaskRequest{Title: "Reopened", Status: statusPtr(StatusDone)})
		require.NoError(t, err)
		require.NotNil(t, task.CompletedAt)

		updated, err := svc.Update(ctx, task.ID, &UpdateTaskRequest{Status: statusPtr(StatusInProgress)})
		require.NoError(t, err)
		require.Nil(t, updated.CompletedAt)
	})

	t.Run("reassignment publishes assigned event", func(t *testing.T) {
		producer := &capturingProducer{}
		svc := NewService(newFakeRepository(), producer, nil)

		task, err := svc.Create(ctx, &CreateTaskRequest{Title: "Handover"})
		require.NoError(t, err)

		_, err = svc.Update(ctx, task.ID, &UpdateTaskRequest{AssignedTo: intPtr(5)})
		require.NoError(t, err)
		require.Contains(t, producer.types(), notifications.TaskEventAssigned)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := NewService(newFakeRepository(), nil, nil)
		_, err := svc.Update(ctx, 99, &UpdateTaskRequest{Title: strPtr("nope")})
		require.ErrorIs(t, err, ErrTaskNotFound)
	})
}

func TestTaskDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), nil, nil)

	task, err := svc.Create(ctx, &CreateTaskRequest{Title: "Ephemeral"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))

	// Soft-deleted tasks disappear from lookups and listings
	_, err = svc.Get(ctx, task.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	list, err := svc.List(ctx, TaskQuery{})
	require.NoError(t, err)
	require.Empty(t, list.Tasks)
	require.Equal(t, int64(0), list.Total)

	require.ErrorIs(t, svc.Delete(ctx, task.ID), ErrTaskNotFound)
}

func TestTaskList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), nil, nil)

	_, err := svc.Create(ctx, &CreateTaskRequest{Title: "Restock shelves"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateTaskRequest{Title: "Count inventory", Status: statusPtr(StatusDone)})
	require.NoError(t, err)

	t.Run("status filter", func(t *testing.T) {
		list, err := svc.List(ctx, TaskQuery{Status: statusPtr(StatusDone)})
		require.NoError(t, err)
		require.Len(t, list.Tasks, 1)
		require.Equal(t, "Count inventory", list.Tasks[0].Title)
	})

	t.Run("title substring filter", func(t *testing.T) {
		list, err := svc.List(ctx, TaskQuery{Title: "restock"})
		require.NoError(t, err)
		require.Len(t, list.Tasks, 1)
	})

	t.Run("invalid filter enum", func(t *testing.T) {
		_, err := svc.List(ctx, TaskQuery{Status: statusPtr("Unknown")})
		require.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("defaults limit", func(t *testing.T) {
		list, err := svc.List(ctx, TaskQuery{})
		require.NoError(t, err)
		require.Equal(t, 10, list.Limit)
		require.Equal(t, int64(2), list.Total)
	})
}
