package redisclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options selects the Redis server backing the appointment cache. Cache calls
// sit on the read path of every lookup, so socket timeouts stay short.
type Options struct {
	Addr     string
	Username string
	Password string
}

func (o Options) redisOptions() *redis.Options {
	return &redis.Options{
		Addr:         o.Addr,
		Username:     o.Username,
		Password:     o.Password,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  300 * time.Millisecond,
		WriteTimeout: 300 * time.Millisecond,
		PoolSize:     16,
		MinIdleConns: 2,
	}
}

// Connect opens a client for o and fails fast when the server is unreachable.
func Connect(ctx context.Context, o Options) (*redis.Client, error) {
	if o.Addr == "" {
		return nil, errors.New("redis address is empty")
	}
	rdb := redis.NewClient(o.redisOptions())

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", o.Addr, err)
	}
	return rdb, nil
}
