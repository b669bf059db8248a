package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrTaskNotFound is returned when a task id has no live row
var ErrTaskNotFound = errors.New("task not found")

type Repository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id int) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, query TaskQuery) ([]Task, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, task *Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *repository) GetByID(ctx context.Context, id int) (*Task, error) {
	var task Task
	err := r.db.WithContext(ctx).First(&task, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *repository) Update(ctx context.Context, task *Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete is a soft delete; listings and lookups exclude the row afterwards
func (r *repository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// sortable columns for List, anything else falls back to created_at
var sortColumns = map[string]string{
	"created_at":     "created_at",
	"updated_at":     "updated_at",
	"title":          "title",
	"status":         "status",
	"priority_level": "priority_level",
	"completed_at":   "completed_at",
}

func (r *repository) List(ctx context.Context, query TaskQuery) ([]Task, int64, error) {
	var taskList []Task
	var total int64

	db := r.db.WithContext(ctx).Model(&Task{})

	if query.Title != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query.Title)+"%")
	}
	if query.Status != nil {
		db = db.Where("status = ?", *query.Status)
	}
	if query.PriorityLevel != nil {
		db = db.Where("priority_level = ?", *query.PriorityLevel)
	}
	if query.AssignedTo != nil {
		db = db.Where("assigned_to = ?", *query.AssignedTo)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[query.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(query.SortDirection, "asc") {
		direction = "ASC"
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	err := db.Order(fmt.Sprintf("%s %s", column, direction)).
		Offset(offset).Limit(limit).Find(&taskList).Error
	return taskList, total, err
}
