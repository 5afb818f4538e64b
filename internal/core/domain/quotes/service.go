// internal/core/domain/quotes/service.go
package quotes

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provider источник котировок
type Provider interface {
	Quote(ctx context.Context, symbol string) (*ProviderQuote, error)
}

// Recorder принимает успешные результаты (история запросов)
type Recorder interface {
	Record(result QuoteResult)
}

// Service получает котировку, считает изменения и пишет результат в историю
type Service struct {
	provider Provider
	recorder Recorder
	now      func() time.Time
}

// NewService создает сервис котировок
func NewService(provider Provider, recorder Recorder) *Service {
	return &Service{
		provider: provider,
		recorder: recorder,
		now:      time.Now,
	}
}

// Fetch запрашивает котировку по тикеру. Любая ошибка матчится с ErrQuoteUnavailable,
// неудачные запросы в историю не попадают.
func (s *Service) Fetch(ctx context.Context, symbol string) (QuoteResult, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return QuoteResult{}, unavailable(symbol, ErrNotFound)
	}

	raw, err := s.provider.Quote(ctx, symbol)
	if err != nil {
		return QuoteResult{}, unavailable(symbol, err)
	}
	if raw == nil {
		return QuoteResult{}, unavailable(symbol, ErrNotFound)
	}

	result, err := s.build(symbol, raw)
	if err != nil {
		return QuoteResult{}, unavailable(symbol, err)
	}

	if s.recorder != nil {
		s.recorder.Record(result)
	}

	return result, nil
}

func (s *Service) build(symbol string, raw *ProviderQuote) (QuoteResult, error) {
	regular := SomePrice(raw.RegularMarketPrice)
	if !regular.Available() {
		return QuoteResult{}, fmt.Errorf("no regular market price for %s", strings.ToUpper(symbol))
	}

	pre := SomePrice(raw.PreMarketPrice)
	post := SomePrice(raw.PostMarketPrice)

	return QuoteResult{
		Symbol:             strings.ToUpper(symbol),
		RegularMarketPrice: raw.RegularMarketPrice,
		PreMarketPrice:     pre,
		PostMarketPrice:    post,
		ChangePercent:      ComputeChange(regular, SomePrice(raw.PreviousClose)),
		PreMarketChange:    ComputeChange(pre, regular),
		PostMarketChange:   ComputeChange(post, regular),
		Timestamp:          s.now().UTC(),
	}, nil
}
