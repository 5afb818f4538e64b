// application/bootstrap/app.go
package bootstrap

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"stock-quote-bot/internal/delivery/telegram/app/bot"
	redis_service "stock-quote-bot/internal/infrastructure/cache/redis"
	"stock-quote-bot/internal/infrastructure/config"
	"stock-quote-bot/internal/infrastructure/persistence/postgres/database"
	"stock-quote-bot/pkg/logger"
	"stock-quote-bot/pkg/utils"
)

// shutdownTimeout сколько ждем завершения текущего обновления
const shutdownTimeout = 30 * time.Second

// Application - собранный бот с опциональными сервисами
type Application struct {
	config *config.Config

	bot      *bot.TelegramBot
	redis    *redis_service.RedisService
	database *database.DatabaseService

	mu        sync.RWMutex
	running   bool
	startTime time.Time
}

func newApplication(cfg *config.Config) *Application {
	return &Application{config: cfg}
}

// Bot возвращает бота
func (app *Application) Bot() *bot.TelegramBot {
	return app.bot
}

// Run запускает polling и блокируется до SIGINT/SIGTERM или отмены ctx
func (app *Application) Run(ctx context.Context) error {
	app.mu.Lock()
	if app.running {
		app.mu.Unlock()
		return errors.New("приложение уже запущено")
	}
	app.running = true
	app.startTime = time.Now()
	app.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.bot.StartPolling(ctx); err != nil {
		app.mu.Lock()
		app.running = false
		app.mu.Unlock()
		return err
	}

	logger.Info("Bot is running...")

	<-ctx.Done()
	logger.Info("🛑 Получен сигнал завершения...")

	app.shutdownWithTimeout(shutdownTimeout)
	return nil
}

// shutdownWithTimeout выполняет graceful shutdown с таймаутом
func (app *Application) shutdownWithTimeout(timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		app.shutdown()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("✅ Graceful shutdown завершен")
	case <-time.After(timeout):
		logger.Warn("⚠️ Таймаут graceful shutdown, принудительное завершение")
	}
}

func (app *Application) shutdown() {
	app.mu.Lock()
	defer app.mu.Unlock()

	if !app.running {
		return
	}

	app.bot.StopPolling()
	app.running = false
	logger.Info("✅ Бот остановлен. Время работы: %v", utils.FormatDuration(time.Since(app.startTime)))
}

// Cleanup закрывает соединения с Redis и PostgreSQL
func (app *Application) Cleanup() {
	if app.redis != nil {
		if err := app.redis.Stop(); err != nil {
			logger.Warn("⚠️ Ошибка закрытия Redis: %v", err)
		}
	}
	if app.database != nil {
		if err := app.database.Stop(); err != nil {
			logger.Warn("⚠️ Ошибка закрытия PostgreSQL: %v", err)
		}
	}
}

// Status состояние приложения
func (app *Application) Status() map[string]interface{} {
	app.mu.RLock()
	defer app.mu.RUnlock()

	return map[string]interface{}{
		"running":       app.running,
		"uptime":        utils.FormatDuration(time.Since(app.startTime)),
		"rate_limiting": app.redis != nil,
		"journal":       app.database != nil,
		"history_size":  app.config.HistorySize,
	}
}
