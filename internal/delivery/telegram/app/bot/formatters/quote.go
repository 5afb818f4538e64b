// internal/delivery/telegram/app/bot/formatters/quote.go
package formatters

import (
	"fmt"
	"strings"

	"stock-quote-bot/internal/core/domain/quotes"
)

// QuoteFormatter отвечает за форматирование котировок и истории
type QuoteFormatter struct {
	historyTitle string
}

// NewQuoteFormatter создает форматтер. capacity попадает в заголовок истории.
func NewQuoteFormatter(capacity int) *QuoteFormatter {
	return &QuoteFormatter{
		historyTitle: fmt.Sprintf("Last %d requests:", capacity),
	}
}

// FormatQuote форматирует ответ на запрос тикера
//
//	*AAPL*
//	Price: 150 🟩 +50.00%
//	Pre-market: 151 🟩 +0.67%
//	Post-market: 149 🟥 -0.67%
//
// Строки pre/post есть только если соответствующая цена известна.
func (f *QuoteFormatter) FormatQuote(r quotes.QuoteResult) string {
	lines := []string{
		"*" + escapeMarkdown(r.Symbol) + "*",
		fmt.Sprintf("Price: %s %s", quotes.FormatPrice(r.RegularMarketPrice), withMarker(r.ChangePercent)),
	}

	if r.PreMarketPrice.Available() {
		lines = append(lines, fmt.Sprintf("Pre-market: %s %s", r.PreMarketPrice, withMarker(r.PreMarketChange)))
	}
	if r.PostMarketPrice.Available() {
		lines = append(lines, fmt.Sprintf("Post-market: %s %s", r.PostMarketPrice, withMarker(r.PostMarketChange)))
	}

	return strings.Join(lines, "\n")
}

// FormatHistory форматирует историю. entries ожидаются в порядке от старых к новым,
// как их отдает history.Store.Snapshot.
func (f *QuoteFormatter) FormatHistory(entries []quotes.QuoteResult) string {
	if len(entries) == 0 {
		return NoRequestsMessage
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, f.historyLine(e))
	}

	return f.historyTitle + "\n\n" + strings.Join(lines, "\n")
}

func (f *QuoteFormatter) historyLine(r quotes.QuoteResult) string {
	var sb strings.Builder

	sb.WriteString("*" + escapeMarkdown(r.Symbol) + "* ")
	sb.WriteString(compactPrice(quotes.FormatPrice(r.RegularMarketPrice), r.ChangePercent))

	if r.PreMarketPrice.Available() {
		sb.WriteString(" / pre ")
		sb.WriteString(compactPrice(r.PreMarketPrice.String(), r.PreMarketChange))
	}
	if r.PostMarketPrice.Available() {
		sb.WriteString(" / post ")
		sb.WriteString(compactPrice(r.PostMarketPrice.String(), r.PostMarketChange))
	}

	return sb.String()
}

// compactPrice "🟩 150 (+50.00%)" или "150 (N/A)"
func compactPrice(price string, c quotes.Change) string {
	if m := ChangeMarker(c); m != "" {
		return fmt.Sprintf("%s %s (%s)", m, price, c)
	}
	return fmt.Sprintf("%s (%s)", price, c)
}
