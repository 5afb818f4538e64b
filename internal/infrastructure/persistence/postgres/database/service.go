// internal/infrastructure/persistence/postgres/database/service.go
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"stock-quote-bot/internal/infrastructure/config"
	"stock-quote-bot/pkg/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DatabaseService сервис для работы с базой данных
type DatabaseService struct {
	config *config.Config
	db     *sqlx.DB
	mu     sync.RWMutex
	state  ServiceState
}

// ServiceState состояние сервиса
type ServiceState string

const (
	StateStopped ServiceState = "stopped"
	StateRunning ServiceState = "running"
	StateError   ServiceState = "error"
)

// NewDatabaseService создает новый сервис базы данных
func NewDatabaseService(cfg *config.Config) *DatabaseService {
	return &DatabaseService{
		config: cfg,
		state:  StateStopped,
	}
}

// Start подключается к PostgreSQL и создает схему журнала
func (ds *DatabaseService) Start(ctx context.Context) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if ds.state == StateRunning {
		return fmt.Errorf("database service already running")
	}

	dbConfig := ds.config.Database
	logger.Info("📡 Connecting to PostgreSQL: %s:%d/%s", dbConfig.Host, dbConfig.Port, dbConfig.Name)

	db, err := sqlx.Open("postgres", ds.config.GetPostgresDSN())
	if err != nil {
		ds.state = StateError
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(dbConfig.MaxOpenConns)
	db.SetMaxIdleConns(dbConfig.MaxIdleConns)
	db.SetConnMaxLifetime(dbConfig.MaxConnLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		ds.state = StateError
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(pingCtx, db); err != nil {
		db.Close()
		ds.state = StateError
		return err
	}

	ds.db = db
	ds.state = StateRunning
	logger.Info("✅ Successfully connected to PostgreSQL (pool %d/%d)", dbConfig.MaxIdleConns, dbConfig.MaxOpenConns)

	return nil
}

// Stop закрывает соединения
func (ds *DatabaseService) Stop() error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if ds.state != StateRunning {
		return nil
	}

	logger.Info("🛑 Stopping database service...")
	err := ds.db.Close()
	ds.db = nil
	ds.state = StateStopped
	if err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// GetDB возвращает соединение с базой данных
func (ds *DatabaseService) GetDB() *sqlx.DB {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.db
}

// State возвращает состояние сервиса
func (ds *DatabaseService) State() ServiceState {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.state
}
