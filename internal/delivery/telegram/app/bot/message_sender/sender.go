// internal/delivery/telegram/app/bot/message_sender/sender.go
package message_sender

import (
	"context"

	"stock-quote-bot/internal/delivery/telegram"
	telegram_http "stock-quote-bot/internal/delivery/telegram/app/http_client"
	"stock-quote-bot/pkg/logger"
	"stock-quote-bot/pkg/utils"
)

// MessageSender интерфейс для отправки сообщений
type MessageSender interface {
	// SendTextMessage отправляет сообщение; пустой parseMode - обычный текст
	SendTextMessage(ctx context.Context, chatID int64, text string, parseMode string) error

	SetTestMode(enabled bool)
	IsTestMode() bool
}

// MessageSenderImpl реализация MessageSender
type MessageSenderImpl struct {
	client      *telegram_http.TelegramClient
	rateLimiter *RateLimiter
	testMode    bool
}

// NewMessageSender создает новый MessageSender
func NewMessageSender(client *telegram_http.TelegramClient) MessageSender {
	return &MessageSenderImpl{
		client:      client,
		rateLimiter: NewRateLimiter(chatSendInterval),
	}
}

// SendTextMessage отправляет текстовое сообщение
func (ms *MessageSenderImpl) SendTextMessage(ctx context.Context, chatID int64, text string, parseMode string) error {
	if ms.testMode {
		logger.Info("[TEST] Send to %d: %s", chatID, utils.Truncate(text, 50))
		return nil
	}

	if err := ms.rateLimiter.Wait(ctx, chatID); err != nil {
		return err
	}

	request := telegram.SendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: parseMode,
	}

	err := ms.sendTelegramRequest(ctx, "sendMessage", request)
	if err != nil {
		logger.Error("❌ Ошибка отправки сообщения в чат %d: %v", chatID, err)
	}
	return err
}

// SetTestMode включает/выключает тестовый режим
func (ms *MessageSenderImpl) SetTestMode(enabled bool) {
	ms.testMode = enabled
}

// IsTestMode возвращает статус тестового режима
func (ms *MessageSenderImpl) IsTestMode() bool {
	return ms.testMode
}
