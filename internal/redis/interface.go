package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the command surface repositories use. *redis.Client satisfies
// it, so miniredis-backed clients work in tests.
type Client interface {
	redis.UniversalClient
}
