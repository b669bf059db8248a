package objects

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrObjectNotFound is returned when an object id has no row
var ErrObjectNotFound = errors.New("object not found")

type Repository interface {
	Create(ctx context.Context, object *Object) error
	GetByID(ctx context.Context, id int) (*Object, error)
	Update(ctx context.Context, object *Object) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, query ObjectQuery) ([]Object, int64, error)
	Stats(ctx context.Context) (*ObjectStatsResponse, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, object *Object) error {
	return r.db.WithContext(ctx).Create(object).Error
}

func (r *repository) GetByID(ctx context.Context, id int) (*Object, error) {
	var object Object
	err := r.db.WithContext(ctx).First(&object, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return &object, nil
}

func (r *repository) Update(ctx context.Context, object *Object) error {
	return r.db.WithContext(ctx).Save(object).Error
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&Object{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrObjectNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context, query ObjectQuery) ([]Object, int64, error) {
	var objects []Object
	var total int64

	db := r.db.WithContext(ctx).Model(&Object{})

	if query.Name != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Name)+"%")
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

	err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&objects).Error
	return objects, total, err
}

func (r *repository) Stats(ctx context.Context) (*ObjectStatsResponse, error) {
	var stats ObjectStatsResponse

	if err := r.db.WithContext(ctx).Model(&Object{}).Count(&stats.TotalObjects).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Model(&Object{}).
		Where("age IS NOT NULL").
		Count(&stats.ObjectsWithAge).Error; err != nil {
		return nil, err
	}

	if stats.ObjectsWithAge > 0 {
		var avg *float64
		if err := r.db.WithContext(ctx).Model(&Object{}).
			Select("AVG(age)").
			Where("age IS NOT NULL").
			Scan(&avg).Error; err != nil {
			return nil, err
		}
		if avg != nil {
			stats.AverageAge = *avg
		}
	}

	return &stats, nil
}
