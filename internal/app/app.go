// Package app assembles storage, cache, event publishing and the appointment
// service from configuration. Both binaries share it.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/leobro/appointment-scheduling/internal/api"
	"github.com/leobro/appointment-scheduling/internal/appointment"
	"github.com/leobro/appointment-scheduling/internal/config"
	"github.com/leobro/appointment-scheduling/internal/db"
	"github.com/leobro/appointment-scheduling/internal/events"
	redisclient "github.com/leobro/appointment-scheduling/internal/redis"
)

type App struct {
	Service      *appointment.Service
	Dependencies []api.Dependency

	closers []func()
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func Build(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{}

	repo, err := a.buildRepository(ctx, cfg, logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	var publisher appointment.EventPublisher = appointment.NoopPublisher
	if brokers := events.SplitBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		kp := events.NewKafkaPublisher(brokers, cfg.KafkaTopic)
		a.closers = append(a.closers, func() {
			if err := kp.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing kafka writer")
			}
		})
		publisher = kp
		logger.Info().Strs("brokers", brokers).Str("topic", cfg.KafkaTopic).Msg("publishing events to kafka")
	} else {
		logger.Warn().Msg("event publishing disabled (no kafka brokers configured)")
	}

	generator, err := appointment.NewSlotGenerator(gofakeit.New(cfg.RandomSeed), cfg.WorkStartHour, cfg.WorkEndHour)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Service = appointment.NewService(repo, generator, publisher, appointment.ClockIn(cfg.Location), logger)
	return a, nil
}

func (a *App) buildRepository(ctx context.Context, cfg config.Config, logger zerolog.Logger) (appointment.Repository, error) {
	var repo appointment.Repository

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		repo = appointment.NewMemoryRepository()
		logger.Warn().Msg("using in-memory storage, data is lost on exit")
	default:
		pgCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		pool, err := db.ConnectPostgres(pgCtx, cfg.PostgresDSN, cfg.PostgresMaxConn)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		a.closers = append(a.closers, pool.Close)

		if err := db.EnsureSchema(pgCtx, pool); err != nil {
			return nil, err
		}
		logger.Info().Msg("connected to Postgres")

		repo = appointment.NewPgRepository(pool)
		a.Dependencies = append(a.Dependencies, api.Dependency{
			Name:     "postgres",
			Critical: true,
			Ping:     pool.Ping,
		})
	}

	if !cfg.CacheEnabled() {
		return repo, nil
	}

	rdb, err := redisclient.Connect(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Username: cfg.RedisUsername,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("redis connection error: %w", err)
	}
	a.closers = append(a.closers, func() {
		if err := rdb.Close(); err != nil {
			logger.Warn().Err(err).Msg("error closing redis")
		}
	})
	logger.Info().Dur("ttl", cfg.CacheTTL).Msg("connected to Redis")

	a.Dependencies = append(a.Dependencies, api.Dependency{
		Name: "redis",
		Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	cache := redisclient.NewAppointmentCache(rdb, cfg.CacheTTL)
	return appointment.NewCachedRepository(repo, cache, logger), nil
}
