// internal/delivery/telegram/app/http_client/polling.go
package http_client

import (
	"context"
	"time"

	"stock-quote-bot/internal/delivery/telegram"
)

// PollingClient клиент для long-polling запросов с увеличенным таймаутом
type PollingClient struct {
	*TelegramClient
}

// NewPollingClient создает новый клиент для polling. HTTP таймаут больше таймаута long-polling.
func NewPollingClient(baseURL string, pollTimeout int) *PollingClient {
	c := NewTelegramClient(baseURL)
	c.SetTimeout(time.Duration(pollTimeout+5) * time.Second)
	return &PollingClient{TelegramClient: c}
}

// GetUpdates получает обновления начиная с offset
func (c *PollingClient) GetUpdates(ctx context.Context, offset int, timeout int) ([]telegram.Update, error) {
	payload := map[string]interface{}{
		"offset":          offset,
		"timeout":         timeout,
		"allowed_updates": []string{"message"},
	}

	var resp telegram.UpdatesResponse
	if err := c.Call(ctx, "getUpdates", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}
