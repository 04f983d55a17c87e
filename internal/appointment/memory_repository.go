package appointment

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepository keeps appointments in process memory. It backs local runs
// with STORAGE_DRIVER=memory and the service tests.
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]Appointment
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]Appointment)}
}

func (r *MemoryRepository) CreateAppointment(_ context.Context, a Appointment) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	r.items[a.ID] = a
	return a.ID, nil
}

func (r *MemoryRepository) GetAppointmentByID(_ context.Context, id int64) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) ListAppointmentsByTimeRange(_ context.Context, from, to time.Time) ([]Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []Appointment{}
	for _, a := range r.items {
		if !a.Time.Before(from) && a.Time.Before(to) {
			result = append(result, a)
		}
	}

	// map order is random; keep output stable by id
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryRepository) UpdateAppointmentStatus(_ context.Context, id int64, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[id]
	if !ok {
		return ErrAppointmentNotFound
	}
	a.Status = status
	r.items[id] = a
	return nil
}

func (r *MemoryRepository) DeleteAppointment(_ context.Context, id int64) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	delete(r.items, id)
	return &a, nil
}

// Len reports how many appointments are stored.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
