package tasks

import (
	"time"

	"gorm.io/gorm"
)

// Task is a unit of work, optionally assigned to an employee
type Task struct {
	ID            int            `json:"id" gorm:"primaryKey;autoIncrement"`
	Title         string         `json:"title" gorm:"not null;index"`
	Description   *string        `json:"description"`
	PriorityLevel *PriorityLevel `json:"priority_level" gorm:"type:text;index"`
	Status        *TaskStatus    `json:"status" gorm:"type:text;index"`
	AssignedTo    *int           `json:"assigned_to" gorm:"index"`
	CompletedAt   *time.Time     `json:"completed_at"`
	CreatedAt     time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// TableName specifies the table name for GORM
func (Task) TableName() string {
	return "tasks"
}
