// internal/delivery/telegram/app/bot/handlers/types.go
package handlers

import "context"

// HandlerType тип хэндлера
type HandlerType string

const (
	TypeCommand HandlerType = "command" // точное совпадение текста
	TypeMessage HandlerType = "message" // любой другой текст
)

// Handler интерфейс для всех хэндлеров
type Handler interface {
	Execute(ctx context.Context, params HandlerParams) (HandlerResult, error)
	GetName() string
	GetCommand() string
	GetType() HandlerType
}

// HandlerParams параметры одного входящего сообщения
type HandlerParams struct {
	ChatID   int64
	Text     string // текст без пробелов по краям
	UpdateID string // ID для корреляции логов
}

// HandlerResult ответ пользователю
type HandlerResult struct {
	Message   string `json:"message"`
	ParseMode string `json:"parse_mode,omitempty"`
}
