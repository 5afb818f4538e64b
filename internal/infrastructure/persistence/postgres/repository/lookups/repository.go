// internal/infrastructure/persistence/postgres/repository/lookups/repository.go
package lookups

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stock-quote-bot/internal/core/domain/quotes"
)

// Lookup строка журнала запросов
type Lookup struct {
	ID            uuid.UUID       `db:"id"`
	ChatID        int64           `db:"chat_id"`
	Symbol        string          `db:"symbol"`
	RegularPrice  float64         `db:"regular_price"`
	ChangePercent string          `db:"change_percent"`
	PrePrice      sql.NullFloat64 `db:"pre_price"`
	PostPrice     sql.NullFloat64 `db:"post_price"`
	FetchedAt     time.Time       `db:"fetched_at"`
}

// NewLookup строит запись журнала из результата запроса
func NewLookup(chatID int64, r quotes.QuoteResult) Lookup {
	return Lookup{
		ID:            uuid.New(),
		ChatID:        chatID,
		Symbol:        r.Symbol,
		RegularPrice:  r.RegularMarketPrice,
		ChangePercent: r.ChangePercent.String(),
		PrePrice:      nullPrice(r.PreMarketPrice),
		PostPrice:     nullPrice(r.PostMarketPrice),
		FetchedAt:     r.Timestamp,
	}
}

func nullPrice(p quotes.OptionalPrice) sql.NullFloat64 {
	v, ok := p.Get()
	return sql.NullFloat64{Float64: v, Valid: ok}
}

// Repository журнал успешных запросов котировок
type Repository struct {
	db *sqlx.DB
}

// NewRepository создает репозиторий
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// RecordLookup добавляет запись в журнал
func (r *Repository) RecordLookup(ctx context.Context, chatID int64, result quotes.QuoteResult) error {
	row := NewLookup(chatID, result)

	query := `
	INSERT INTO quote_lookups (
		id, chat_id, symbol, regular_price, change_percent, pre_price, post_price, fetched_at
	) VALUES (
		:id, :chat_id, :symbol, :regular_price, :change_percent, :pre_price, :post_price, :fetched_at
	)`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert quote lookup: %w", err)
	}
	return nil
}

