// internal/delivery/telegram/app/bot/message_sender/rate_limiter.go
package message_sender

import (
	"context"
	"sync"
	"time"
)

// pruneThreshold после скольких чатов чистим устаревшие записи
const pruneThreshold = 1024

// RateLimiter выдерживает минимальный интервал между отправками в один чат
type RateLimiter struct {
	interval time.Duration
	next     map[int64]time.Time // ближайшее разрешенное время отправки
	mu       sync.Mutex
	now      func() time.Time
}

// NewRateLimiter создает новый ограничитель
func NewRateLimiter(interval time.Duration) *RateLimiter {
	return &RateLimiter{
		interval: interval,
		next:     make(map[int64]time.Time),
		now:      time.Now,
	}
}

// reserve занимает слот для чата и возвращает, сколько нужно подождать
func (rl *RateLimiter) reserve(chatID int64) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.next) >= pruneThreshold {
		for id, at := range rl.next {
			if at.Before(now) {
				delete(rl.next, id)
			}
		}
	}

	at, ok := rl.next[chatID]
	if !ok || at.Before(now) {
		at = now
	}
	rl.next[chatID] = at.Add(rl.interval)

	return at.Sub(now)
}

// Wait блокируется, пока в чат снова можно отправлять
func (rl *RateLimiter) Wait(ctx context.Context, chatID int64) error {
	delay := rl.reserve(chatID)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
