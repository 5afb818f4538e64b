// internal/delivery/telegram/app/bot/middlewares/rate_limit.go
package middlewares

import (
	"context"
	"errors"

	"stock-quote-bot/pkg/logger"
)

// ErrTooManyRequests чат превысил лимит запросов
var ErrTooManyRequests = errors.New("too many requests, try again later")

// ChatLimiter счетчик запросов по чату (Redis)
type ChatLimiter interface {
	Allow(ctx context.Context, chatID int64) (bool, error)
}

// RateLimitMiddleware пропускает сообщение, если чат укладывается в лимит.
// Если лимитер недоступен, сообщение пропускается.
type RateLimitMiddleware struct {
	limiter ChatLimiter
}

// NewRateLimitMiddleware создает middleware; nil limiter - без ограничений
func NewRateLimitMiddleware(limiter ChatLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Check возвращает ErrTooManyRequests, если лимит превышен
func (m *RateLimitMiddleware) Check(ctx context.Context, chatID int64) error {
	if m == nil || m.limiter == nil {
		return nil
	}

	allowed, err := m.limiter.Allow(ctx, chatID)
	if err != nil {
		logger.Warn("⚠️ Rate limiter недоступен, пропускаем чат %d: %v", chatID, err)
		return nil
	}
	if !allowed {
		logger.Warn("🚫 Чат %d превысил лимит запросов", chatID)
		return ErrTooManyRequests
	}
	return nil
}
