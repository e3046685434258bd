package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

func TestNewClient_RequiresEndpoint(t *testing.T) {
	client, err := redis.NewClient("", nil)
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNewClient_Ping(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestNewClient_URLEndpoint(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.Select(2)
	mr.Set("armor_detail:leather-armor", "{}")

	client, err := redis.NewClient("redis://"+mr.Addr()+"/2", &redis.Options{MaxRetries: 1})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	exists, err := client.Exists(context.Background(), "armor_detail:leather-armor").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestNewClient_InvalidURL(t *testing.T) {
	client, err := redis.NewClient("redis://localhost:6379/not-a-db", nil)
	assert.Error(t, err)
	assert.Nil(t, client)
}
