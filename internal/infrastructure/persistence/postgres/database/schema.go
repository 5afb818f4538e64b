// internal/infrastructure/persistence/postgres/database/schema.go
package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema журнала запросов. Идемпотентна, выполняется при каждом старте.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS quote_lookups (
		id              UUID PRIMARY KEY,
		chat_id         BIGINT NOT NULL,
		symbol          TEXT NOT NULL,
		regular_price   DOUBLE PRECISION NOT NULL,
		change_percent  TEXT NOT NULL,
		pre_price       DOUBLE PRECISION,
		post_price      DOUBLE PRECISION,
		fetched_at      TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_quote_lookups_chat_fetched ON quote_lookups (chat_id, fetched_at DESC)`,
}

// Migrate создает таблицы журнала
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
