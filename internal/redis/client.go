// Package redis provides a thin wrapper around the go-redis client so the
// armor detail cache can be backed by miniredis or redismock in tests.
package redis

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the connection pool. Zero values keep go-redis defaults.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient creates a client for a single Redis instance. endpoint is either
// host:port or a redis:// or rediss:// URL carrying credentials and a DB
// number. Redis connects lazily; call Ping to check reachability.
func NewClient(endpoint string, opts *Options) (Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	redisOpts, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	if opts != nil {
		applyOptions(redisOpts, opts)
	}

	return redis.NewClient(redisOpts), nil
}

func parseEndpoint(endpoint string) (*redis.Options, error) {
	if !strings.HasPrefix(endpoint, "redis://") && !strings.HasPrefix(endpoint, "rediss://") {
		return &redis.Options{Addr: endpoint}, nil
	}

	redisOpts, err := redis.ParseURL(endpoint)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid endpoint URL: %w", err)
	}
	return redisOpts, nil
}

func applyOptions(redisOpts *redis.Options, opts *Options) {
	if opts.PoolSize > 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.MinIdleConns > 0 {
		redisOpts.MinIdleConns = opts.MinIdleConns
	}
	if opts.ConnMaxIdleTime > 0 {
		redisOpts.ConnMaxIdleTime = opts.ConnMaxIdleTime
	}
	if opts.MaxRetries != 0 {
		redisOpts.MaxRetries = opts.MaxRetries
	}
	if opts.UseTLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
}
