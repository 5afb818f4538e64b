// application/bootstrap/builder.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"stock-quote-bot/internal/adapters/market/yahoo"
	historystore "stock-quote-bot/internal/core/domain/history"
	"stock-quote-bot/internal/core/domain/quotes"
	"stock-quote-bot/internal/delivery/telegram/app/bot"
	"stock-quote-bot/internal/delivery/telegram/app/bot/message_sender"
	redis_service "stock-quote-bot/internal/infrastructure/cache/redis"
	"stock-quote-bot/internal/infrastructure/config"
	"stock-quote-bot/internal/infrastructure/persistence/postgres/database"
	"stock-quote-bot/internal/infrastructure/persistence/postgres/repository/lookups"
	"stock-quote-bot/pkg/logger"
)

// AppOption опция сборки приложения
type AppOption func(*AppBuilder)

// AppBuilder строитель приложения
type AppBuilder struct {
	config   *config.Config
	provider quotes.Provider
	sender   message_sender.MessageSender
	testMode bool
	err      error
}

// NewAppBuilder создает новый строитель
func NewAppBuilder() *AppBuilder {
	return &AppBuilder{}
}

// WithConfig устанавливает конфигурацию
func (b *AppBuilder) WithConfig(cfg *config.Config) *AppBuilder {
	b.config = cfg
	return b
}

// WithConfigFile загружает конфигурацию из файла
func (b *AppBuilder) WithConfigFile(path string) *AppBuilder {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		b.err = err
		return b
	}
	b.config = cfg
	return b
}

// WithOption применяет опцию
func (b *AppBuilder) WithOption(option AppOption) *AppBuilder {
	option(b)
	return b
}

// Build проверяет конфигурацию и собирает зависимости.
// Redis и Postgres опциональны: если они недоступны, бот работает без них.
func (b *AppBuilder) Build(ctx context.Context) (*Application, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.config == nil {
		return nil, fmt.Errorf("%w: config is not set", config.ErrConfigurationMissing)
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}

	app := newApplication(b.config)

	store := historystore.NewStore(b.config.HistorySize)

	provider := b.provider
	if provider == nil {
		provider = yahoo.NewProvider()
	}

	deps := bot.Dependencies{
		Fetcher: quotes.NewService(provider, store),
		History: store,
		Sender:  b.sender,
	}

	if b.config.Redis.Enabled {
		rs := redis_service.NewRedisService(b.config)
		if err := rs.Start(ctx); err != nil {
			logger.Warn("⚠️ Redis недоступен, ограничение запросов выключено: %v", err)
		} else {
			app.redis = rs
			deps.Limiter = redis_service.NewRateLimiter(rs.GetClient(), b.config.RateLimit.Requests, b.config.RateLimit.Window)
		}
	}

	if b.config.Database.Enabled {
		ds := database.NewDatabaseService(b.config)
		if err := ds.Start(ctx); err != nil {
			logger.Warn("⚠️ PostgreSQL недоступен, журнал запросов выключен: %v", err)
		} else {
			app.database = ds
			deps.Journal = lookups.NewRepository(ds.GetDB())
		}
	}

	app.bot = bot.NewTelegramBot(b.config, deps)
	if b.testMode {
		app.bot.GetMessageSender().SetTestMode(true)
	}

	return app, nil
}

// WithProvider подменяет источник котировок
func WithProvider(provider quotes.Provider) AppOption {
	return func(b *AppBuilder) {
		b.provider = provider
	}
}

// WithMessageSender подменяет отправку сообщений
func WithMessageSender(sender message_sender.MessageSender) AppOption {
	return func(b *AppBuilder) {
		b.sender = sender
	}
}

// WithTestMode ответы пишутся в лог вместо отправки
func WithTestMode(enabled bool) AppOption {
	return func(b *AppBuilder) {
		b.testMode = enabled
	}
}

// IsConfigurationMissing - ошибка обязательного параметра
func IsConfigurationMissing(err error) bool {
	return errors.Is(err, config.ErrConfigurationMissing)
}
