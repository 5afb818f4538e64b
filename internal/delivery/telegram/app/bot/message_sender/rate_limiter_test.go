package message_sender

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_ReservesPerChat(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(time.Second)
	rl.now = func() time.Time { return base }

	assert.Zero(t, rl.reserve(1))
	assert.Equal(t, time.Second, rl.reserve(1))
	assert.Equal(t, 2*time.Second, rl.reserve(1))
	assert.Zero(t, rl.reserve(2))

	rl.now = func() time.Time { return base.Add(5 * time.Second) }
	assert.Zero(t, rl.reserve(1))
}

func TestRateLimiter_PrunesExpired(t *testing.T) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(time.Millisecond)
	rl.now = func() time.Time { return base }
	for i := 0; i < pruneThreshold; i++ {
		rl.reserve(int64(i))
	}

	rl.now = func() time.Time { return base.Add(time.Second) }
	rl.reserve(-1)
	assert.Len(t, rl.next, 1)
}

func TestRateLimiter_WaitHonoursContext(t *testing.T) {
	rl := NewRateLimiter(time.Hour)
	require.NoError(t, rl.Wait(context.Background(), 7))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, rl.Wait(ctx, 7), context.DeadlineExceeded)
}
