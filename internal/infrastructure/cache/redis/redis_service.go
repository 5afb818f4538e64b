// internal/infrastructure/cache/redis/redis_service.go
package redis

import (
	"context"
	"fmt"

	"stock-quote-bot/internal/infrastructure/config"
	"stock-quote-bot/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// RedisService владеет клиентом Redis
type RedisService struct {
	config *config.Config
	client *redis.Client
}

// NewRedisService создает новый Redis сервис
func NewRedisService(cfg *config.Config) *RedisService {
	return &RedisService{config: cfg}
}

// Start подключается к Redis и проверяет соединение
func (rs *RedisService) Start(ctx context.Context) error {
	if rs.client != nil {
		return fmt.Errorf("redis service already running")
	}

	redisConfig := rs.config.Redis
	logger.Info("🔄 Connecting to Redis: %s (DB: %d)", rs.config.GetRedisAddress(), redisConfig.DB)

	client := redis.NewClient(&redis.Options{
		Addr:        rs.config.GetRedisAddress(),
		Password:    redisConfig.Password,
		DB:          redisConfig.DB,
		PoolSize:    redisConfig.PoolSize,
		DialTimeout: redisConfig.DialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisConfig.DialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	rs.client = client
	logger.Info("✅ Redis connected")
	return nil
}

// GetClient возвращает клиент (nil до Start)
func (rs *RedisService) GetClient() *redis.Client {
	return rs.client
}

// Stop закрывает соединение
func (rs *RedisService) Stop() error {
	if rs.client == nil {
		return nil
	}
	err := rs.client.Close()
	rs.client = nil
	return err
}
