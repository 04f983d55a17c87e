package appointment

import (
	"context"

	"github.com/rs/zerolog"
)

// Cache stores appointments by id. Get reports a miss with found=false.
type Cache interface {
	Get(ctx context.Context, id int64) (a *Appointment, found bool, err error)
	Set(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id int64) error
}

// CachedRepository serves id lookups from a cache in front of another
// repository. Cache failures are logged and fall through to the backing
// store.
type CachedRepository struct {
	Repository
	cache  Cache
	logger zerolog.Logger
}

func NewCachedRepository(next Repository, cache Cache, logger zerolog.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: next,
		cache:      cache,
		logger:     logger,
	}
}

func (r *CachedRepository) GetAppointmentByID(ctx context.Context, id int64) (*Appointment, error) {
	cached, found, err := r.cache.Get(ctx, id)
	if err != nil {
		r.logger.Warn().Err(err).Int64("appointment_id", id).Msg("cache get failed")
	}
	if found {
		return cached, nil
	}

	a, err := r.Repository.GetAppointmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, *a); err != nil {
		r.logger.Warn().Err(err).Int64("appointment_id", id).Msg("cache set failed")
	}
	return a, nil
}

func (r *CachedRepository) UpdateAppointmentStatus(ctx context.Context, id int64, status Status) error {
	err := r.Repository.UpdateAppointmentStatus(ctx, id, status)
	r.evict(ctx, id)
	return err
}

func (r *CachedRepository) DeleteAppointment(ctx context.Context, id int64) (*Appointment, error) {
	a, err := r.Repository.DeleteAppointment(ctx, id)
	r.evict(ctx, id)
	return a, err
}

func (r *CachedRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, id); err != nil {
		r.logger.Warn().Err(err).Int64("appointment_id", id).Msg("cache evict failed")
	}
}
