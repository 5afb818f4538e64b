// internal/delivery/telegram/app/bot/handlers/router/router.go
package router

import (
	"context"
	"fmt"

	"stock-quote-bot/internal/delivery/telegram/app/bot/handlers"
	"stock-quote-bot/pkg/logger"
)

// Router маршрутизатор хэндлеров: точное совпадение команды, иначе хэндлер по умолчанию
type Router interface {
	RegisterHandler(handler handlers.Handler)
	Handle(ctx context.Context, text string, params handlers.HandlerParams) (handlers.HandlerResult, error)
	GetCommands() []string
}

// routerImpl реализация Router
type routerImpl struct {
	handlers map[string]handlers.Handler
	fallback handlers.Handler
}

// NewRouter создает новый роутер
func NewRouter() Router {
	return &routerImpl{
		handlers: make(map[string]handlers.Handler),
	}
}

// RegisterHandler регистрирует хэндлер. TypeMessage становится хэндлером по умолчанию.
func (r *routerImpl) RegisterHandler(handler handlers.Handler) {
	if handler.GetType() == handlers.TypeMessage {
		r.fallback = handler
		logger.Debug("Зарегистрирован хэндлер по умолчанию: %s", handler.GetName())
		return
	}

	r.handlers[handler.GetCommand()] = handler
	logger.Debug("Зарегистрирован хэндлер: %s для %s: %q",
		handler.GetName(), handler.GetType(), handler.GetCommand())
}

// Handle обрабатывает текст сообщения
func (r *routerImpl) Handle(ctx context.Context, text string, params handlers.HandlerParams) (handlers.HandlerResult, error) {
	if handler, exists := r.handlers[text]; exists {
		return r.executeHandler(ctx, handler, text, params)
	}

	if r.fallback != nil {
		return r.executeHandler(ctx, r.fallback, text, params)
	}

	return handlers.HandlerResult{}, fmt.Errorf("no handler for %q", text)
}

// executeHandler выполняет обработчик
func (r *routerImpl) executeHandler(ctx context.Context, handler handlers.Handler, text string, params handlers.HandlerParams) (handlers.HandlerResult, error) {
	logger.Debug("[%s] Вызов хэндлера: %s для: %q", params.UpdateID, handler.GetName(), text)

	result, err := handler.Execute(ctx, params)
	if err != nil {
		logger.Warn("[%s] Ошибка в хэндлере %s для %q: %v", params.UpdateID, handler.GetName(), text, err)
		return handlers.HandlerResult{}, err
	}

	return result, nil
}

// GetCommands возвращает список зарегистрированных команд
func (r *routerImpl) GetCommands() []string {
	commands := make([]string, 0, len(r.handlers))
	for cmd := range r.handlers {
		commands = append(commands, cmd)
	}
	return commands
}

var _ Router = (*routerImpl)(nil)
