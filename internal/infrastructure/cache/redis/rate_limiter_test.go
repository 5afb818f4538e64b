package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	_, client := newTestClient(t)
	rl := NewRateLimiter(client, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := rl.Allow(ctx, 42)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := rl.Allow(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	// Другой чат считается отдельно
	ok, err = rl.Allow(ctx, 43)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_WindowExpires(t *testing.T) {
	mr, client := newTestClient(t)
	rl := NewRateLimiter(client, 1, time.Minute)
	ctx := context.Background()

	ok, err := rl.Allow(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = rl.Allow(ctx, 1)
	require.NoError(t, err)
	require.False(t, ok)

	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"1"))

	mr.FastForward(time.Minute + time.Second)

	ok, err = rl.Allow(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_RestoresMissingTTL(t *testing.T) {
	mr, client := newTestClient(t)
	rl := NewRateLimiter(client, 3, time.Minute)
	key := keyPrefix + "7"

	// Счетчик уже выше лимита, но TTL так и не был выставлен
	require.NoError(t, mr.Set(key, "5"))
	require.Zero(t, mr.TTL(key))

	ok, err := rl.Allow(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL(key))

	mr.FastForward(time.Minute + time.Second)

	ok, err = rl.Allow(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimiter_RedisDown(t *testing.T) {
	mr, client := newTestClient(t)
	rl := NewRateLimiter(client, 1, time.Minute)
	mr.Close()

	_, err := rl.Allow(context.Background(), 1)
	assert.Error(t, err)
}
