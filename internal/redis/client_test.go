package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-dungeon/internal/redis"
)

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := redis.NewClient("", nil)
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{DialTimeout: time.Second})
	require.NoError(t, err)

	assert.NoError(t, redis.Ping(context.Background(), client, time.Second))

	mr.Close()
	assert.Error(t, redis.Ping(context.Background(), client, time.Second))
	assert.Error(t, redis.Ping(context.Background(), nil, time.Second))
}

func TestNewClientAcceptsURL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := redis.NewClient("redis://"+mr.Addr()+"/0", nil)
	require.NoError(t, err)
	assert.NoError(t, redis.Ping(context.Background(), client, time.Second))

	_, err = redis.NewClient("redis://%zz", nil)
	assert.Error(t, err)
}
