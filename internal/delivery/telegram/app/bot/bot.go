// internal/delivery/telegram/app/bot/bot.go
package bot

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	historystore "stock-quote-bot/internal/core/domain/history"
	"stock-quote-bot/internal/delivery/telegram"
	"stock-quote-bot/internal/delivery/telegram/app/bot/formatters"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers"
	quote_message "stock-quote-bot/internal/delivery/telegram/app/bot/handlers/quote"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers/router"
	"stock-quote-bot/internal/delivery/telegram/app/bot/message_sender"
	"stock-quote-bot/internal/delivery/telegram/app/bot/middlewares"
	telegram_http "stock-quote-bot/internal/delivery/telegram/app/http_client"
	"stock-quote-bot/internal/infrastructure/config"
	"stock-quote-bot/pkg/logger"
)

// errorPrefix - префикс ответа об ошибке
const errorPrefix = "Error: "

// TelegramBot - бот котировок
type TelegramBot struct {
	config *config.Config

	telegramClient *telegram_http.TelegramClient
	pollingClient  *telegram_http.PollingClient

	messageSender message_sender.MessageSender
	router        router.Router
	rateLimit     *middlewares.RateLimitMiddleware

	pollingHandler *PollingClient

	// Сообщения обрабатываются строго по одному
	mu sync.Mutex
}

// Dependencies зависимости для TelegramBot
type Dependencies struct {
	Fetcher quote_message.Fetcher
	History *historystore.Store
	Journal quote_message.Journal        // опционально
	Limiter middlewares.ChatLimiter      // опционально
	Sender  message_sender.MessageSender // опционально, по умолчанию Bot API
}

// NewTelegramBot создает новый экземпляр TelegramBot
func NewTelegramBot(cfg *config.Config, deps Dependencies) *TelegramBot {
	baseURL := cfg.GetBotAPIBaseURL()
	telegramClient := telegram_http.NewTelegramClient(baseURL)
	pollingClient := telegram_http.NewPollingClient(baseURL, cfg.Telegram.PollingTimeout)

	ms := deps.Sender
	if ms == nil {
		ms = message_sender.NewMessageSender(telegramClient)
	}

	formatter := formatters.NewQuoteFormatter(deps.History.Capacity())

	bot := &TelegramBot{
		config:         cfg,
		telegramClient: telegramClient,
		pollingClient:  pollingClient,
		messageSender:  ms,
		router:         InitHandlers(deps, formatter),
		rateLimit:      middlewares.NewRateLimitMiddleware(deps.Limiter),
	}

	bot.pollingHandler = NewPollingClient(bot)

	return bot
}

// HandleUpdate обрабатывает одно обновление: история, котировка или ответ об ошибке.
// Ошибка возвращается только если не удалось отправить ответ.
func (b *TelegramBot) HandleUpdate(ctx context.Context, update *telegram.Update) error {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return nil // Игнорируем другие типы обновлений
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	chatID := update.Message.Chat.ID
	params := handlers.HandlerParams{
		ChatID:   chatID,
		Text:     strings.TrimSpace(update.Message.Text),
		UpdateID: uuid.NewString(),
	}

	logger.Debug("[%s] 📩 Update %d из чата %d: %q", params.UpdateID, update.UpdateID, chatID, params.Text)

	if err := b.rateLimit.Check(ctx, chatID); err != nil {
		return b.sendError(ctx, chatID, err)
	}

	result, err := b.router.Handle(ctx, params.Text, params)
	if err != nil {
		return b.sendError(ctx, chatID, err)
	}

	if err := b.messageSender.SendTextMessage(ctx, chatID, result.Message, result.ParseMode); err != nil {
		// Ответ не ушел (например, Telegram не разобрал разметку), сообщаем ошибку обычным текстом
		logger.Warn("[%s] ⚠️ Не удалось отправить ответ в чат %d: %v", params.UpdateID, chatID, err)
		return b.sendError(ctx, chatID, err)
	}
	return nil
}

// sendError отправляет "Error: ..." обычным текстом
func (b *TelegramBot) sendError(ctx context.Context, chatID int64, err error) error {
	return b.messageSender.SendTextMessage(ctx, chatID, errorPrefix+err.Error(), "")
}

// GetPollingClient возвращает polling клиент для polling.go
func (b *TelegramBot) GetPollingClient() *telegram_http.PollingClient {
	return b.pollingClient
}

// GetMessageSender возвращает MessageSender
func (b *TelegramBot) GetMessageSender() message_sender.MessageSender {
	return b.messageSender
}

// StartPolling запускает цикл получения обновлений
func (b *TelegramBot) StartPolling(ctx context.Context) error {
	return b.pollingHandler.Start(ctx)
}

// StopPolling останавливает цикл и ждет завершения текущего обновления
func (b *TelegramBot) StopPolling() {
	b.pollingHandler.Stop()
}

// IsPolling работает ли polling
func (b *TelegramBot) IsPolling() bool {
	return b.pollingHandler.IsRunning()
}
