// internal/delivery/telegram/app/http_client/telegram.go
package http_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stock-quote-bot/internal/delivery/telegram"
)

// APIError - ответ Bot API с ok=false
type APIError struct {
	Method      string
	Code        int
	Description string
	RetryAfter  int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error %d on %s: %s", e.Code, e.Method, e.Description)
}

// TelegramClient клиент для работы с Telegram API
type TelegramClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewTelegramClient создает новый клиент Telegram. baseURL вида https://api.telegram.org/bot<token>/
func NewTelegramClient(baseURL string) *TelegramClient {
	return &TelegramClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
	}
}

// Call выполняет POST метода Bot API с JSON телом и декодирует ответ в result
func (c *TelegramClient) Call(ctx context.Context, method string, payload interface{}, result interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var envelope telegram.APIResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if !envelope.OK {
		apiErr := &APIError{Method: method, Code: envelope.ErrorCode, Description: envelope.Description}
		if envelope.Parameters != nil {
			apiErr.RetryAfter = envelope.Parameters.RetryAfter
		}
		return apiErr
	}

	if result != nil {
		if err := json.Unmarshal(raw, result); err != nil {
			return fmt.Errorf("failed to parse result: %w", err)
		}
	}
	return nil
}

// SetTimeout устанавливает таймаут для клиента
func (c *TelegramClient) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}
