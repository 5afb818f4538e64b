// internal/core/domain/history/store.go
package history

import (
	"sync"

	"stock-quote-bot/internal/core/domain/quotes"
)

// DefaultCapacity размер истории по умолчанию
const DefaultCapacity = 10

// Store последние успешные запросы, не больше одной записи на тикер.
// Хранится от новых к старым, живет столько же, сколько процесс.
type Store struct {
	mu       sync.Mutex
	entries  []quotes.QuoteResult
	capacity int
}

// NewStore создает пустую историю
func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		entries:  make([]quotes.QuoteResult, 0, capacity+1),
		capacity: capacity,
	}
}

// Record убирает старую запись того же тикера, кладет новую в начало и обрезает хвост
func (s *Store) Record(result quotes.QuoteResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Symbol != result.Symbol {
			kept = append(kept, e)
		}
	}

	s.entries = append([]quotes.QuoteResult{result}, kept...)
	if len(s.entries) > s.capacity {
		s.entries = s.entries[:s.capacity]
	}
}

// Snapshot копия истории в порядке отображения: от старых к новым
func (s *Store) Snapshot() []quotes.QuoteResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]quotes.QuoteResult, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out
}

// Len количество записей
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Capacity максимальный размер
func (s *Store) Capacity() int {
	return s.capacity
}
