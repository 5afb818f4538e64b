// internal/core/domain/quotes/change.go
package quotes

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeChange считает (current - base) / base * 100 с округлением до двух знаков.
// Если одна из цен отсутствует или равна нулю, изменение не определено.
func ComputeChange(current, base OptionalPrice) Change {
	cur, ok1 := current.Get()
	b, ok2 := base.Get()
	if !ok1 || !ok2 {
		return NoChange()
	}

	curDec := decimal.NewFromFloat(cur)
	baseDec := decimal.NewFromFloat(b)

	pct := curDec.Sub(baseDec).Div(baseDec).Mul(hundred).Round(2)

	// "+" только для строго положительных значений, 0.00 остается без знака
	sign := ""
	if pct.IsPositive() {
		sign = "+"
	}
	return Change{percent: sign + pct.StringFixed(2) + "%"}
}
