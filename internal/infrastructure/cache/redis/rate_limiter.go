// internal/infrastructure/cache/redis/rate_limiter.go
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "stockbot:ratelimit:"

// RateLimiter счетчик запросов на чат в фиксированном окне
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewRateLimiter создает ограничитель: не больше limit запросов за window на чат
func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Allow увеличивает счетчик чата и сообщает, укладывается ли запрос в лимит.
// TTL ставится, только если у ключа его нет, поэтому окно не продлевается,
// а ключ без TTL (например, после сбоя EXPIRE) получает его на следующем запросе.
func (rl *RateLimiter) Allow(ctx context.Context, chatID int64) (bool, error) {
	key := fmt.Sprintf("%s%d", keyPrefix, chatID)

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}

	// TTL -1: у ключа нет срока жизни
	if ttl.Val() < 0 {
		if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	return incr.Val() <= int64(rl.limit), nil
}
