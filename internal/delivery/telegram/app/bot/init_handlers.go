// internal/delivery/telegram/app/bot/init_handlers.go
package bot

import (
	"stock-quote-bot/internal/delivery/telegram/app/bot/formatters"
	history_command "stock-quote-bot/internal/delivery/telegram/app/bot/handlers/history"
	quote_message "stock-quote-bot/internal/delivery/telegram/app/bot/handlers/quote"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers/router"
	"stock-quote-bot/pkg/logger"
)

// InitHandlers регистрирует хэндлеры: "1" - история, остальное - тикер
func InitHandlers(deps Dependencies, formatter *formatters.QuoteFormatter) router.Router {
	logger.Debug("🔧 Инициализация хэндлеров...")

	r := router.NewRouter()
	r.RegisterHandler(history_command.NewHandler(deps.History, formatter))
	r.RegisterHandler(quote_message.NewHandler(deps.Fetcher, formatter, deps.Journal))

	return r
}
