package database

import (
	"taskhub/internal/employees"
	"taskhub/internal/objects"
	"taskhub/internal/tasks"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&objects.Object{},
		&employees.Employee{},
		&tasks.Task{},
	)
}
