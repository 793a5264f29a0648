// Package testutils provides test helpers: miniredis clients, ASCII map
// fixtures and deterministic random sources.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

// TestRedis is a miniredis server with a client connected to it
type TestRedis struct {
	Server *miniredis.Miniredis
	Client redis.Client
}

// StartRedis starts an in-memory Redis for t. seed, when non-nil, can load
// keys before the client connects. cleanup closes the client and server.
func StartRedis(t testing.TB, seed func(mr *miniredis.Miniredis)) (*TestRedis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	if seed != nil {
		seed(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		mr.Close()
	}
	return &TestRedis{Server: mr, Client: client}, cleanup
}
