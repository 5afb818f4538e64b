// internal/delivery/telegram/app/bot/formatters/types.go
package formatters

import (
	"strings"

	"stock-quote-bot/internal/core/domain/quotes"
)

// Маркеры направления изменения
const (
	MarkerUp   = "🟩"
	MarkerDown = "🟥"
)

// NoRequestsMessage - ответ на пустую историю
const NoRequestsMessage = "No requests yet"

// ChangeMarker возвращает маркер для изменения: пусто для N/A,
// MarkerUp для значений с "+", MarkerDown для нуля и отрицательных
func ChangeMarker(c quotes.Change) string {
	if !c.Available() {
		return ""
	}
	if c.Positive() {
		return MarkerUp
	}
	return MarkerDown
}

// withMarker "🟩 +1.00%" или "N/A"
func withMarker(c quotes.Change) string {
	if m := ChangeMarker(c); m != "" {
		return m + " " + c.String()
	}
	return c.String()
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// escapeMarkdown экранирует спецсимволы Markdown (не V2)
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
