// internal/delivery/telegram/app/bot/handlers/quote/handler.go
package quote

import (
	"context"

	"stock-quote-bot/internal/core/domain/quotes"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers/base"
	"stock-quote-bot/pkg/logger"
)

// Fetcher получает котировку (quotes.Service)
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (quotes.QuoteResult, error)
}

// Formatter форматирует котировку
type Formatter interface {
	FormatQuote(r quotes.QuoteResult) string
}

// Journal журнал успешных запросов. Ошибки журнала на ответ не влияют.
type Journal interface {
	RecordLookup(ctx context.Context, chatID int64, r quotes.QuoteResult) error
}

// quoteHandler обрабатывает любой текст как тикер
type quoteHandler struct {
	*base.BaseHandler
	fetcher   Fetcher
	formatter Formatter
	journal   Journal
}

// NewHandler создает обработчик тикеров. journal может быть nil.
func NewHandler(fetcher Fetcher, formatter Formatter, journal Journal) handlers.Handler {
	return &quoteHandler{
		BaseHandler: &base.BaseHandler{
			Name: "quote_message_handler",
			Type: handlers.TypeMessage,
		},
		fetcher:   fetcher,
		formatter: formatter,
		journal:   journal,
	}
}

// Execute запрашивает котировку по тексту сообщения
func (h *quoteHandler) Execute(ctx context.Context, params handlers.HandlerParams) (handlers.HandlerResult, error) {
	result, err := h.fetcher.Fetch(ctx, params.Text)
	if err != nil {
		return handlers.HandlerResult{}, err
	}

	logger.Lookup(result.Symbol, result.RegularMarketPrice, result.ChangePercent.String(), params.ChatID)

	if h.journal != nil {
		if err := h.journal.RecordLookup(ctx, params.ChatID, result); err != nil {
			logger.Warn("[%s] Не удалось записать запрос %s в журнал: %v", params.UpdateID, result.Symbol, err)
		}
	}

	return h.Markdown(h.formatter.FormatQuote(result)), nil
}
