// Package redis wraps the go-redis client so repositories can be tested
// against miniredis and mocked at the interface.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the connection pool. Zero values keep go-redis defaults.
type Options struct {
	PoolSize     int
	MinIdleConns int
	MaxRetries   int
	DialTimeout  time.Duration
}

// NewClient creates a single-instance client for addr, which is either
// host:port or a redis:// or rediss:// URL. Connections open lazily.
func NewClient(addr string, opts *Options) (Client, error) {
	if addr == "" {
		return nil, errors.New("redis: address is required")
	}

	redisOpts := &redis.Options{Addr: addr}
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("redis: invalid url %q: %w", addr, err)
		}
		redisOpts = parsed
	}

	if opts != nil {
		if opts.PoolSize > 0 {
			redisOpts.PoolSize = opts.PoolSize
		}
		if opts.MinIdleConns > 0 {
			redisOpts.MinIdleConns = opts.MinIdleConns
		}
		if opts.MaxRetries != 0 {
			redisOpts.MaxRetries = opts.MaxRetries
		}
		if opts.DialTimeout > 0 {
			redisOpts.DialTimeout = opts.DialTimeout
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks the server answers within timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	if client == nil {
		return errors.New("redis: client is required")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(ctx).Err()
}
