package redisclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/leobro/appointment-scheduling/internal/appointment"
)

const keyPrefix = "appointment:"

// AppointmentCache keeps JSON snapshots of appointments under a per id key.
type AppointmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAppointmentCache creates a cache whose entries expire after ttl.
func NewAppointmentCache(client *redis.Client, ttl time.Duration) *AppointmentCache {
	return &AppointmentCache{
		client: client,
		ttl:    ttl,
	}
}

func cacheKey(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

func (c *AppointmentCache) Get(ctx context.Context, id int64) (*appointment.Appointment, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cached appointment: %w", err)
	}

	var a appointment.Appointment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, false, fmt.Errorf("decode cached appointment: %w", err)
	}
	return &a, true, nil
}

func (c *AppointmentCache) Set(ctx context.Context, a appointment.Appointment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode appointment: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(a.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached appointment: %w", err)
	}
	return nil
}

func (c *AppointmentCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("delete cached appointment: %w", err)
	}
	return nil
}
