package tasks

import (
	"context"
	"errors"
	"time"

	"taskhub/internal/notifications"
	"taskhub/pkg/logger"
)

var (
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidPriority = errors.New("invalid priority level")
)

type Service interface {
	Create(ctx context.Context, req *CreateTaskRequest) (*Task, error)
	Get(ctx context.Context, id int) (*Task, error)
	Update(ctx context.Context, id int, req *UpdateTaskRequest) (*Task, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, query TaskQuery) (*TaskListResponse, error)
}

type service struct {
	repo     Repository
	producer notifications.Producer
	log      *logger.Logger
}

// NewService builds the task service. producer may be nil, in which case
// lifecycle events are not published.
func NewService(repo Repository, producer notifications.Producer, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:     repo,
		producer: producer,
		log:      log,
	}
}

func (s *service) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	if req.Status != nil && !req.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if req.PriorityLevel != nil && !req.PriorityLevel.IsValid() {
		return nil, ErrInvalidPriority
	}

	status := StatusToDo
	if req.Status != nil {
		status = *req.Status
	}

	task := &Task{
		Title:         req.Title,
		Description:   req.Description,
		PriorityLevel: req.PriorityLevel,
		Status:        &status,
		AssignedTo:    req.AssignedTo,
	}
	if status == StatusDone {
		now := time.Now().UTC()
		task.CompletedAt = &now
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.publish(ctx, notifications.TaskEventCreated, task)
	if task.AssignedTo != nil {
		s.publish(ctx, notifications.TaskEventAssigned, task)
	}
	if status == StatusDone {
		s.publish(ctx, notifications.TaskEventCompleted, task)
	}

	return task, nil
}

func (s *service) Get(ctx context.Context, id int) (*Task, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int, req *UpdateTaskRequest) (*Task, error) {
	if req.Status != nil && !req.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if req.PriorityLevel != nil && !req.PriorityLevel.IsValid() {
		return nil, ErrInvalidPriority
	}

	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasDone := task.Status != nil && *task.Status == StatusDone
	assigneeChanged := false

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.PriorityLevel != nil {
		task.PriorityLevel = req.PriorityLevel
	}
	if req.AssignedTo != nil {
		if task.AssignedTo == nil || *task.AssignedTo != *req.AssignedTo {
			assigneeChanged = true
		}
		task.AssignedTo = req.AssignedTo
	}
	if req.Status != nil {
		task.Status = req.Status
		nowDone := *req.Status == StatusDone
		if nowDone && !wasDone {
			now := time.Now().UTC()
			task.CompletedAt = &now
		} else if !nowDone {
			task.CompletedAt = nil
		}
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	if assigneeChanged {
		s.publish(ctx, notifications.TaskEventAssigned, task)
	}
	if req.Status != nil && *req.Status == StatusDone && !wasDone {
		s.publish(ctx, notifications.TaskEventCompleted, task)
	}

	return task, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) List(ctx context.Context, query TaskQuery) (*TaskListResponse, error) {
	if query.Status != nil && !query.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if query.PriorityLevel != nil && !query.PriorityLevel.IsValid() {
		return nil, ErrInvalidPriority
	}

	taskList, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if taskList == nil {
		taskList = []Task{}
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	return &TaskListResponse{
		Tasks:  taskList,
		Total:  total,
		Offset: query.Offset,
		Limit:  limit,
	}, nil
}

// publish sends a lifecycle event; failures are logged and do not fail the request
func (s *service) publish(ctx context.Context, eventType notifications.TaskEventType, task *Task) {
	if s.producer == nil {
		return
	}
	event := notifications.NewTaskEvent(eventType, task.ID, task.Title, task.AssignedTo)
	if err := s.producer.PublishTaskEvent(ctx, event); err != nil {
		s.log.WithError(err).Warn("failed to publish task event",
			"event_type", string(eventType),
			"task_id", task.ID,
		)
	}
}
