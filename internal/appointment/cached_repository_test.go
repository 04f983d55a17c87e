package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeCache struct {
	items  map[int64]Appointment
	gets   int
	hits   int
	getErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[int64]Appointment{}}
}

func (c *fakeCache) Get(_ context.Context, id int64) (*Appointment, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	a, ok := c.items[id]
	if !ok {
		return nil, false, nil
	}
	c.hits++
	return &a, true, nil
}

func (c *fakeCache) Set(_ context.Context, a Appointment) error {
	c.items[a.ID] = a
	return nil
}

func (c *fakeCache) Delete(_ context.Context, id int64) error {
	delete(c.items, id)
	return nil
}

func TestCachedRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	backing := NewMemoryRepository()
	cache := newFakeCache()
	repo := NewCachedRepository(backing, cache, zerolog.Nop())

	id, err := repo.CreateAppointment(ctx, validAppointmentAt(time.Now().Add(time.Hour)))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := repo.GetAppointmentByID(ctx, id); err != nil {
		t.Fatalf("first get: %v", err)
	}
	if _, ok := cache.items[id]; !ok {
		t.Fatal("expected appointment to be cached after miss")
	}

	if _, err := repo.GetAppointmentByID(ctx, id); err != nil {
		t.Fatalf("second get: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected one cache hit, got %d", cache.hits)
	}
}

func TestCachedRepository_EvictsOnWrite(t *testing.T) {
	ctx := context.Background()
	backing := NewMemoryRepository()
	cache := newFakeCache()
	repo := NewCachedRepository(backing, cache, zerolog.Nop())

	id, _ := repo.CreateAppointment(ctx, validAppointmentAt(time.Now().Add(time.Hour)))
	_, _ = repo.GetAppointmentByID(ctx, id)

	if err := repo.UpdateAppointmentStatus(ctx, id, StatusObtain); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, ok := cache.items[id]; ok {
		t.Fatal("expected cache entry to be evicted after status update")
	}

	got, err := repo.GetAppointmentByID(ctx, id)
	if err != nil || got.Status != StatusObtain {
		t.Fatalf("expected fresh OBTAIN status, got %+v, %v", got, err)
	}

	if _, err := repo.DeleteAppointment(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetAppointmentByID(ctx, id); !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestCachedRepository_CacheErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	backing := NewMemoryRepository()
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	repo := NewCachedRepository(backing, cache, zerolog.Nop())

	id, _ := backing.CreateAppointment(ctx, validAppointmentAt(time.Now().Add(time.Hour)))

	if _, err := repo.GetAppointmentByID(ctx, id); err != nil {
		t.Fatalf("expected storage fallback, got %v", err)
	}
}
