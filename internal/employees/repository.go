package employees

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrEmployeeNotFound is returned when an employee id has no row
var ErrEmployeeNotFound = errors.New("employee not found")

type Repository interface {
	GetByID(ctx context.Context, id int) (*Employee, error)
	List(ctx context.Context, query EmployeeQuery) ([]Employee, int64, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, employees []Employee) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id int) (*Employee, error) {
	var employee Employee
	err := r.db.WithContext(ctx).First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

func (r *repository) List(ctx context.Context, query EmployeeQuery) ([]Employee, int64, error) {
	var list []Employee
	var total int64

	db := r.db.WithContext(ctx).Model(&Employee{})

	if query.StoreID != nil {
		db = db.Where("store_id = ?", *query.StoreID)
	}
	if query.FirstName != "" {
		db = db.Where("LOWER(first_name) LIKE ?", "%"+strings.ToLower(query.FirstName)+"%")
	}
	if query.LastName != "" {
		db = db.Where("LOWER(last_name) LIKE ?", "%"+strings.ToLower(query.LastName)+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	err := db.Order("last_name ASC, first_name ASC").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Employee{}).Count(&count).Error
	return count, err
}

func (r *repository) CreateBatch(ctx context.Context, employees []Employee) error {
	return r.db.WithContext(ctx).Create(&employees).Error
}
