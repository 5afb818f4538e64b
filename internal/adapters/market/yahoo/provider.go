// internal/adapters/market/yahoo/provider.go
package yahoo

import (
	"context"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"

	"stock-quote-bot/internal/core/domain/quotes"
	"stock-quote-bot/pkg/logger"
)

// Provider котировки Yahoo Finance через finance-go
type Provider struct {
	get func(symbol string) (*finance.Quote, error)
}

// NewProvider создает провайдер
func NewProvider() *Provider {
	return &Provider{get: quote.Get}
}

// Quote запрашивает котировку. Для неизвестного тикера finance-go возвращает (nil, nil),
// это превращается в quotes.ErrNotFound.
func (p *Provider) Quote(ctx context.Context, symbol string) (*quotes.ProviderQuote, error) {
	type response struct {
		q   *finance.Quote
		err error
	}

	// finance-go не принимает context, поэтому ждем ответ или отмену
	ch := make(chan response, 1)
	go func() {
		q, err := p.get(symbol)
		ch <- response{q: q, err: err}
	}()

	var resp response
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case resp = <-ch:
	}

	if resp.err != nil {
		logger.Error("Error fetching price for %s: %v", symbol, resp.err)
		return nil, resp.err
	}
	if resp.q == nil {
		return nil, quotes.ErrNotFound
	}

	return &quotes.ProviderQuote{
		Symbol:             resp.q.Symbol,
		RegularMarketPrice: resp.q.RegularMarketPrice,
		PreviousClose:      resp.q.RegularMarketPreviousClose,
		PreMarketPrice:     resp.q.PreMarketPrice,
		PostMarketPrice:    resp.q.PostMarketPrice,
	}, nil
}
