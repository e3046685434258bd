package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the cache layer is allowed to use.
// *redis.Client, miniredis-backed clients and redismock all satisfy it.
type Client interface {
	redis.Cmdable
	Close() error
}
