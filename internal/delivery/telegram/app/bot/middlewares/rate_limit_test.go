package middlewares

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type limiterFunc func(ctx context.Context, chatID int64) (bool, error)

func (f limiterFunc) Allow(ctx context.Context, chatID int64) (bool, error) { return f(ctx, chatID) }

func TestRateLimitMiddleware(t *testing.T) {
	ctx := context.Background()

	allow := NewRateLimitMiddleware(limiterFunc(func(context.Context, int64) (bool, error) { return true, nil }))
	assert.NoError(t, allow.Check(ctx, 1))

	deny := NewRateLimitMiddleware(limiterFunc(func(context.Context, int64) (bool, error) { return false, nil }))
	assert.ErrorIs(t, deny.Check(ctx, 1), ErrTooManyRequests)

	broken := NewRateLimitMiddleware(limiterFunc(func(context.Context, int64) (bool, error) {
		return false, errors.New("connection refused")
	}))
	assert.NoError(t, broken.Check(ctx, 1))

	assert.NoError(t, NewRateLimitMiddleware(nil).Check(ctx, 1))
}
