// internal/core/domain/quotes/errors.go
package quotes

import (
	"errors"
)

// ErrQuoteUnavailable котировку получить не удалось: неизвестный тикер,
// ошибка сети или некорректный ответ провайдера
var ErrQuoteUnavailable = errors.New("quote unavailable")

// ErrNotFound провайдер не знает такой тикер
var ErrNotFound = errors.New("Not Found")

// UnavailableError оборачивает причину. Error() отдает текст причины как есть,
// он уходит пользователю в ответе "Error: ...".
type UnavailableError struct {
	Symbol string
	Err    error
}

func (e *UnavailableError) Error() string {
	return e.Err.Error()
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is позволяет матчить errors.Is(err, ErrQuoteUnavailable)
func (e *UnavailableError) Is(target error) bool {
	return target == ErrQuoteUnavailable
}

func unavailable(symbol string, err error) error {
	return &UnavailableError{Symbol: symbol, Err: err}
}
