// internal/delivery/telegram/app/bot/message_sender/utils.go
package message_sender

import (
	"context"
	"errors"
	"time"

	telegram_http "stock-quote-bot/internal/delivery/telegram/app/http_client"
	"stock-quote-bot/pkg/logger"
)

const (
	// Telegram допускает ~1 сообщение в секунду на чат
	chatSendInterval  = time.Second
	defaultRetryAfter = 5 // секунд
	maxRetryAfter     = 30
)

// sendTelegramRequest отправляет запрос к Telegram API.
// На 429 ждем retry_after и пробуем один раз повторно.
func (ms *MessageSenderImpl) sendTelegramRequest(ctx context.Context, method string, request interface{}) error {
	err := ms.client.Call(ctx, method, request, nil)

	var apiErr *telegram_http.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != 429 {
		return err
	}

	retryAfter := apiErr.RetryAfter
	if retryAfter <= 0 {
		retryAfter = defaultRetryAfter
	}
	if retryAfter > maxRetryAfter {
		retryAfter = maxRetryAfter
	}
	logger.Warn("⚠️ Telegram API rate limit, waiting %d seconds", retryAfter)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(retryAfter) * time.Second):
	}

	return ms.client.Call(ctx, method, request, nil)
}

