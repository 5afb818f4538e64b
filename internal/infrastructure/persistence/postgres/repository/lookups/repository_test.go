package lookups

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-quote-bot/internal/core/domain/quotes"
	"stock-quote-bot/internal/infrastructure/persistence/postgres/database"
)

func sampleResult() quotes.QuoteResult {
	regular := quotes.SomePrice(150)
	pre := quotes.SomePrice(151)
	return quotes.QuoteResult{
		Symbol:             "AAPL",
		RegularMarketPrice: 150,
		PreMarketPrice:     pre,
		PostMarketPrice:    quotes.NoPrice(),
		ChangePercent:      quotes.ComputeChange(regular, quotes.SomePrice(100)),
		PreMarketChange:    quotes.ComputeChange(pre, regular),
		Timestamp:          time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestNewLookup(t *testing.T) {
	row := NewLookup(42, sampleResult())

	assert.NotEqual(t, [16]byte{}, [16]byte(row.ID))
	assert.Equal(t, int64(42), row.ChatID)
	assert.Equal(t, "AAPL", row.Symbol)
	assert.Equal(t, 150.0, row.RegularPrice)
	assert.Equal(t, "+50.00%", row.ChangePercent)
	assert.True(t, row.PrePrice.Valid)
	assert.Equal(t, 151.0, row.PrePrice.Float64)
	assert.False(t, row.PostPrice.Valid)
	assert.Equal(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC), row.FetchedAt)
}

func TestNewLookup_UniqueIDs(t *testing.T) {
	a := NewLookup(1, sampleResult())
	b := NewLookup(1, sampleResult())
	assert.NotEqual(t, a.ID, b.ID)
}

// Требует живой PostgreSQL: TEST_POSTGRES_DSN="postgres://...?sslmode=disable"
func TestRepository_RecordLookup(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, database.Migrate(ctx, db))

	chatID := time.Now().UnixNano()
	repo := NewRepository(db)
	require.NoError(t, repo.RecordLookup(ctx, chatID, sampleResult()))

	var rows []Lookup
	require.NoError(t, db.SelectContext(ctx, &rows, `
	SELECT id, chat_id, symbol, regular_price, change_percent, pre_price, post_price, fetched_at
	FROM quote_lookups WHERE chat_id = $1`, chatID))
	require.Len(t, rows, 1)
	assert.Equal(t, "AAPL", rows[0].Symbol)
	assert.Equal(t, "+50.00%", rows[0].ChangePercent)
	assert.False(t, rows[0].PostPrice.Valid)

	_, err = db.ExecContext(ctx, `DELETE FROM quote_lookups WHERE chat_id = $1`, chatID)
	require.NoError(t, err)
}
