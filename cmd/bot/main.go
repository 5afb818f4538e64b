// cmd/bot/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"stock-quote-bot/application/bootstrap"
	"stock-quote-bot/internal/infrastructure/config"
	"stock-quote-bot/pkg/logger"
)

var version = "dev"

func main() {
	configPath := flag.String("config", ".env", "путь к .env файлу")
	logLevel := flag.String("log-level", "", "уровень логирования (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "показать версию и выйти")
	testMode := flag.Bool("test-mode", false, "писать ответы в лог вместо отправки")
	flag.Parse()

	if *showVersion {
		fmt.Println("stock-quote-bot", version)
		return
	}

	// 1. Загружаем конфигурацию
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	// 2. Логгер
	if err := logger.InitGlobal(cfg.LogFile, cfg.LogLevel, strings.EqualFold(cfg.LogLevel, logger.LevelDebug)); err != nil {
		logger.Fatal("Failed to init logger: %v", err)
	}
	defer logger.Close()

	// 3. Собираем приложение
	ctx := context.Background()
	app, err := bootstrap.NewAppBuilder().
		WithConfig(cfg).
		WithOption(bootstrap.WithTestMode(*testMode)).
		Build(ctx)
	if err != nil {
		if bootstrap.IsConfigurationMissing(err) {
			logger.Fatal("Configuration missing: %v", err)
		}
		logger.Fatal("Failed to build application: %v", err)
	}
	defer app.Cleanup()

	// 4. Запускаем до SIGINT/SIGTERM
	if err := app.Run(ctx); err != nil {
		app.Cleanup()
		logger.Fatal("Failed to run application: %v", err)
	}
}
