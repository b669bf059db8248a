package objects

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	nextID  int
	objects map[int]*Object
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, objects: make(map[int]*Object)}
}

func (r *fakeRepository) Create(ctx context.Context, object *Object) error {
	object.ID = r.nextID
	r.nextID++
	object.CreatedAt = time.Now().UTC()
	object.UpdatedAt = object.CreatedAt
	clone := *object
	r.objects[object.ID] = &clone
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id int) (*Object, error) {
	object, ok := r.objects[id]
	if !ok {
		return nil, ErrObjectNotFound
	}
	clone := *object
	return &clone, nil
}

func (r *fakeRepository) Update(ctx context.Context, object *Object) error {
	if _, ok := r.objects[object.ID]; !ok {
		return ErrObjectNotFound
	}
	clone := *object
	r.objects[object.ID] = &clone
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id int) error {
	if _, ok := r.objects[id]; !ok {
		return ErrObjectNotFound
	}
	delete(r.objects, id)
	return nil
}

func (r *fakeRepository) List(ctx context.Context, query ObjectQuery) ([]Object, int64, error) {
	var result []Object
	for _, object := range r.objects {
		if query.Name != "" && !strings.Contains(strings.ToLower(object.Name), strings.ToLower(query.Name)) {
			continue
		}
		result = append(result, *object)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

func (r *fakeRepository) Stats(ctx context.Context) (*ObjectStatsResponse, error) {
	stats := &ObjectStatsResponse{}
	var sum int
	for _, object := range r.objects {
		stats.TotalObjects++
		if object.Age != nil {
			stats.ObjectsWithAge++
			sum += *object.Age
		}
	}
	if stats.ObjectsWithAge > 0 {
		stats.AverageAge = float64(sum) / float64(stats.ObjectsWithAge)
	}
	return stats, nil
}

func agePtr(n int) *int { return &n }

func TestObjectCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), nil, 0)

	created, err := svc.Create(ctx, &CreateObjectRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Age:   agePtr(34),
	})
	require.NoError(t, err)
	require.Equal(t, 1, created.ID)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice", fetched.Name)

	name := "Alicia"
	updated, err := svc.Update(ctx, created.ID, &UpdateObjectRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Alicia", updated.Name)
	require.Equal(t, "alice@example.com", updated.Email)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestObjectList(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), nil, 0)

	for _, name := range []string{"Alice", "Bob", "Alicia"} {
		_, err := svc.Create(ctx, &CreateObjectRequest{Name: name, Email: name + "@example.com"})
		require.NoError(t, err)
	}

	t.Run("name filter", func(t *testing.T) {
		list, err := svc.List(ctx, ObjectQuery{Name: "ali"})
		require.NoError(t, err)
		require.Len(t, list.Objects, 2)
		require.Equal(t, int64(2), list.Total)
	})

	t.Run("default limit", func(t *testing.T) {
		list, err := svc.List(ctx, ObjectQuery{})
		require.NoError(t, err)
		require.Equal(t, 10, list.Limit)
		require.Equal(t, int64(3), list.Total)
	})
}

func TestObjectProfile(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), nil, 0)

	created, err := svc.Create(ctx, &CreateObjectRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Age:   agePtr(34),
	})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "/objects/1/profile", profile.ProfileURL)
	require.NotEmpty(t, profile.CreatedAt)

	_, err = svc.Profile(ctx, 99)
	require.ErrorIs(t, err, ErrObjectNotFound)
}

func TestObjectStats(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), nil, 0)

	_, err := svc.Create(ctx, &CreateObjectRequest{Name: "A", Email: "a@x.com", Age: agePtr(30)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateObjectRequest{Name: "B", Email: "b@x.com", Age: agePtr(40)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &CreateObjectRequest{Name: "C", Email: "c@x.com"})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(3), stats.TotalObjects)
	require.Equal(t, int64(2), stats.ObjectsWithAge)
	require.InDelta(t, 35.0, stats.AverageAge, 0.001)
}
