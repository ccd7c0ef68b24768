package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// OpenRedis connects and pings. An empty addr means redis is not configured:
// it returns a nil client and no error.
func OpenRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db, MaxRetries: 1})
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return r, nil
}
