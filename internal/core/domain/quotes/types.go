// internal/core/domain/quotes/types.go
package quotes

import (
	"strconv"
	"strings"
	"time"
)

// NotAvailable - отображение отсутствующего значения
const NotAvailable = "N/A"

// OptionalPrice цена, которой может не быть.
// Нулевая цена от провайдера считается отсутствующей: "нет цены" и "цена 0" не различаются.
type OptionalPrice struct {
	value float64
	ok    bool
}

// SomePrice создает цену; 0 превращается в отсутствующую
func SomePrice(v float64) OptionalPrice {
	if v == 0 {
		return OptionalPrice{}
	}
	return OptionalPrice{value: v, ok: true}
}

// NoPrice отсутствующая цена
func NoPrice() OptionalPrice {
	return OptionalPrice{}
}

// Get возвращает значение и признак наличия
func (p OptionalPrice) Get() (float64, bool) {
	return p.value, p.ok
}

// Available есть ли цена
func (p OptionalPrice) Available() bool {
	return p.ok
}

func (p OptionalPrice) String() string {
	if !p.ok {
		return NotAvailable
	}
	return FormatPrice(p.value)
}

// FormatPrice печатает цену в кратчайшей десятичной форме: 150, 150.25
func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Change изменение в процентах: "+50.00%", "-1.25%", "0.00%" или N/A
type Change struct {
	percent string
}

// NoChange отсутствующее изменение
func NoChange() Change {
	return Change{}
}

// Available определено ли изменение
func (c Change) Available() bool {
	return c.percent != ""
}

// Positive true только для значений, начинающихся с "+". Ноль не положительный.
func (c Change) Positive() bool {
	return strings.HasPrefix(c.percent, "+")
}

func (c Change) String() string {
	if !c.Available() {
		return NotAvailable
	}
	return c.percent
}

// ProviderQuote сырые поля ответа провайдера котировок
type ProviderQuote struct {
	Symbol             string
	RegularMarketPrice float64
	PreviousClose      float64
	PreMarketPrice     float64
	PostMarketPrice    float64
}

// QuoteResult результат одного запроса котировки. После создания не меняется.
type QuoteResult struct {
	Symbol             string
	RegularMarketPrice float64
	PreMarketPrice     OptionalPrice
	PostMarketPrice    OptionalPrice
	ChangePercent      Change
	PreMarketChange    Change
	PostMarketChange   Change
	Timestamp          time.Time
}
