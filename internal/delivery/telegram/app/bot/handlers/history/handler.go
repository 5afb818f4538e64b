// internal/delivery/telegram/app/bot/handlers/history/handler.go
package history

import (
	"context"

	"stock-quote-bot/internal/core/domain/quotes"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers/base"
)

// Command - единственная управляющая команда бота
const Command = "1"

// Snapshotter источник истории в порядке отображения
type Snapshotter interface {
	Snapshot() []quotes.QuoteResult
}

// Formatter форматирует историю
type Formatter interface {
	FormatHistory(entries []quotes.QuoteResult) string
}

// historyHandler показывает последние запросы
type historyHandler struct {
	*base.BaseHandler
	store     Snapshotter
	formatter Formatter
}

// NewHandler создает обработчик команды "1"
func NewHandler(store Snapshotter, formatter Formatter) handlers.Handler {
	return &historyHandler{
		BaseHandler: &base.BaseHandler{
			Name:    "history_command_handler",
			Command: Command,
			Type:    handlers.TypeCommand,
		},
		store:     store,
		formatter: formatter,
	}
}

// Execute выполняет обработку команды
func (h *historyHandler) Execute(_ context.Context, _ handlers.HandlerParams) (handlers.HandlerResult, error) {
	return h.Markdown(h.formatter.FormatHistory(h.store.Snapshot())), nil
}
