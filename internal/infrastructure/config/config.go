// internal/infrastructure/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrConfigurationMissing - не задан обязательный параметр, запуск невозможен
var ErrConfigurationMissing = errors.New("configuration missing")

// ============================================
// TELEGRAM
// ============================================

// TelegramConfig - настройки Bot API
type TelegramConfig struct {
	BotToken       string `mapstructure:"TELEGRAM_TOKEN"`
	APIURL         string `mapstructure:"TELEGRAM_API_URL"`
	PollingTimeout int    `mapstructure:"POLLING_TIMEOUT"` // секунды long-polling
}

// ============================================
// REDIS (ограничение частоты запросов)
// ============================================

// RedisConfig конфигурация Redis
type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     int    `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
	Enabled  bool   `mapstructure:"REDIS_ENABLED"`

	PoolSize    int           `mapstructure:"REDIS_POOL_SIZE"`
	DialTimeout time.Duration `mapstructure:"REDIS_DIAL_TIMEOUT"`
}

// RateLimitConfig - лимит запросов на один чат
type RateLimitConfig struct {
	Requests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	Window   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
}

// ============================================
// POSTGRES (журнал запросов)
// ============================================

// DatabaseConfig - конфигурация базы данных
type DatabaseConfig struct {
	Host     string `mapstructure:"DB_HOST"`
	Port     int    `mapstructure:"DB_PORT"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME"`
	SSLMode  string `mapstructure:"DB_SSLMODE"`
	Enabled  bool   `mapstructure:"DB_ENABLED"`

	MaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	MaxConnLifetime time.Duration `mapstructure:"DB_MAX_CONN_LIFETIME"`
}

// Config - основная структура конфигурации
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`

	Telegram  TelegramConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Database  DatabaseConfig

	// Размер истории запросов
	HistorySize int `mapstructure:"HISTORY_SIZE"`

	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogFile  string `mapstructure:"LOG_FILE"`
}

// LoadConfig загружает .env (если он есть) и читает переменные окружения.
// Обязательные параметры не проверяются, для этого есть Validate.
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}

	cfg.Environment = getEnv("ENVIRONMENT", "production")

	// ======================
	// TELEGRAM
	// ======================
	cfg.Telegram.BotToken = strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN"))
	cfg.Telegram.APIURL = strings.TrimRight(getEnv("TELEGRAM_API_URL", "https://api.telegram.org"), "/")
	cfg.Telegram.PollingTimeout = getEnvInt("POLLING_TIMEOUT", 30)

	// ======================
	// REDIS
	// ======================
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnvInt("REDIS_PORT", 6379)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)
	cfg.Redis.PoolSize = getEnvInt("REDIS_POOL_SIZE", 10)
	cfg.Redis.DialTimeout = getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
	cfg.Redis.Enabled = getEnvBool("REDIS_ENABLED", false)

	cfg.RateLimit.Requests = getEnvInt("RATE_LIMIT_REQUESTS", 20)
	cfg.RateLimit.Window = getEnvDuration("RATE_LIMIT_WINDOW", time.Minute)

	// ======================
	// БАЗА ДАННЫХ
	// ======================
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "")
	cfg.Database.Password = getEnv("DB_PASSWORD", "")
	cfg.Database.Name = getEnv("DB_NAME", "")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 5)
	cfg.Database.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 2)
	cfg.Database.MaxConnLifetime = getEnvDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute)
	cfg.Database.Enabled = getEnvBool("DB_ENABLED", false)

	cfg.HistorySize = getEnvInt("HISTORY_SIZE", 10)

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFile = getEnv("LOG_FILE", "")

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("%w: TELEGRAM_TOKEN environment variable is not set", ErrConfigurationMissing)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("HISTORY_SIZE must be positive, got %d", c.HistorySize)
	}
	if c.Redis.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive when Redis is enabled")
	}
	if c.Database.Enabled && c.Database.Name == "" {
		return fmt.Errorf("%w: DB_NAME is required when DB_ENABLED=true", ErrConfigurationMissing)
	}
	return nil
}

// GetBotAPIBaseURL возвращает базовый URL вида https://api.telegram.org/bot<token>/
func (c *Config) GetBotAPIBaseURL() string {
	return c.Telegram.APIURL + "/bot" + c.Telegram.BotToken + "/"
}

// GetRedisAddress возвращает адрес Redis
func (c *Config) GetRedisAddress() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// GetPostgresDSN возвращает DSN для lib/pq
func (c *Config) GetPostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
