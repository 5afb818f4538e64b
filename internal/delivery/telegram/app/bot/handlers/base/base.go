// internal/delivery/telegram/app/bot/handlers/base/base.go
package base

import (
	"stock-quote-bot/internal/delivery/telegram"
	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers"
)

// BaseHandler базовая структура для всех хэндлеров
type BaseHandler struct {
	Name    string
	Command string
	Type    handlers.HandlerType
}

// GetName возвращает имя хэндлера
func (h *BaseHandler) GetName() string {
	return h.Name
}

// GetCommand возвращает команду
func (h *BaseHandler) GetCommand() string {
	return h.Command
}

// GetType возвращает тип хэндлера
func (h *BaseHandler) GetType() handlers.HandlerType {
	return h.Type
}

// Markdown оборачивает текст в результат с разметкой Markdown
func (h *BaseHandler) Markdown(text string) handlers.HandlerResult {
	return handlers.HandlerResult{Message: text, ParseMode: telegram.ParseModeMarkdown}
}
