package objects

import (
	"context"
	"fmt"
	"time"

	"taskhub/pkg/cache"
)

type Service interface {
	Create(ctx context.Context, req *CreateObjectRequest) (*Object, error)
	Get(ctx context.Context, id int) (*Object, error)
	Update(ctx context.Context, id int, req *UpdateObjectRequest) (*Object, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, query ObjectQuery) (*ObjectListResponse, error)
	Profile(ctx context.Context, id int) (*ObjectProfileResponse, error)
	Stats(ctx context.Context) (*ObjectStatsResponse, error)
}

type service struct {
	repo     Repository
	cache    cache.Service
	cacheTTL time.Duration
}

// NewService builds the object service. cacheSvc may be nil, in which case
// listings always hit the repository.
func NewService(repo Repository, cacheSvc cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheSvc,
		cacheTTL: cacheTTL,
	}
}

func (s *service) Create(ctx context.Context, req *CreateObjectRequest) (*Object, error) {
	object := &Object{
		Name:  req.Name,
		Email: req.Email,
		Age:   req.Age,
	}

	if err := s.repo.Create(ctx, object); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return object, nil
}

func (s *service) Get(ctx context.Context, id int) (*Object, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Update(ctx context.Context, id int, req *UpdateObjectRequest) (*Object, error) {
	object, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		object.Name = *req.Name
	}
	if req.Email != nil {
		object.Email = *req.Email
	}
	if req.Age != nil {
		object.Age = req.Age
	}

	if err := s.repo.Update(ctx, object); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)
	return object, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *service) List(ctx context.Context, query ObjectQuery) (*ObjectListResponse, error) {
	fetch := func() (*ObjectListResponse, error) {
		objects, total, err := s.repo.List(ctx, query)
		if err != nil {
			return nil, err
		}
		if objects == nil {
			objects = []Object{}
		}
		limit := query.Limit
		if limit <= 0 {
			limit = 10
		}
		return &ObjectListResponse{
			Objects: objects,
			Total:   total,
			Offset:  query.Offset,
			Limit:   limit,
		}, nil
	}

	if s.cache == nil {
		return fetch()
	}

	key := fmt.Sprintf("taskhub:objects:list:%d:%d:%s", query.Limit, query.Offset, query.Name)
	var resp ObjectListResponse
	err := s.cache.GetOrSet(ctx, key, s.cacheTTL, func() (interface{}, error) {
		return fetch()
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) Profile(ctx context.Context, id int) (*ObjectProfileResponse, error) {
	object, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ObjectProfileResponse{
		ID:         object.ID,
		Name:       object.Name,
		Email:      object.Email,
		Age:        object.Age,
		ProfileURL: fmt.Sprintf("/objects/%d/profile", object.ID),
		CreatedAt:  object.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *service) Stats(ctx context.Context) (*ObjectStatsResponse, error) {
	return s.repo.Stats(ctx)
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.DeletePattern(ctx, "taskhub:objects:list:*")
	}
}
