package employees

import (
	"context"
)

type Service interface {
	Get(ctx context.Context, id int) (*Employee, error)
	List(ctx context.Context, query EmployeeQuery) (*EmployeeListResponse, error)
	SeedIfEmpty(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, id int) (*Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, query EmployeeQuery) (*EmployeeListResponse, error) {
	list, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Employee{}
	}

	limit := query.Limit
	if limit <= 0 {
		limit = 10
	}

	return &EmployeeListResponse{
		Employees: list,
		Total:     total,
		Offset:    query.Offset,
		Limit:     limit,
	}, nil
}

// SeedIfEmpty loads the default roster when the table has no rows.
// Returns how many employees were inserted.
func (s *service) SeedIfEmpty(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	seed := DefaultRoster()
	if err := s.repo.CreateBatch(ctx, seed); err != nil {
		return 0, err
	}
	return len(seed), nil
}

// DefaultRoster is the fixed test roster across three stores
func DefaultRoster() []Employee {
	mk := func(externalID, first, last string, storeID int) Employee {
		id := externalID
		return Employee{ExternalID: &id, FirstName: first, LastName: last, StoreID: storeID}
	}

	return []Employee{
		mk("EMP001", "John", "Smith", 1),
		mk("EMP002", "Sarah", "Johnson", 1),
		mk("EMP003", "Michael", "Brown", 1),
		mk("EMP004", "Emily", "Davis", 2),
		mk("EMP005", "David", "Wilson", 2),
		mk("EMP006", "Lisa", "Anderson", 2),
		mk("EMP007", "James", "Taylor", 3),
		mk("EMP008", "Jennifer", "Martinez", 3),
		mk("EMP009", "Robert", "Garcia", 3),
		mk("EMP010", "Amanda", "Rodriguez", 1),
		mk("EMP011", "Christopher", "Lee", 2),
		mk("EMP012", "Jessica", "White", 3),
	}
}
