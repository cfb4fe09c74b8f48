package pricefmt

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const nbsp = "\u00a0"

// символы валют, которые показываем вместо ISO-кода
var currencySymbols = map[currency.Unit]string{
	currency.RUB: "₽",
	currency.USD: "$",
	currency.EUR: "€",
}

// PriceFormatter форматирует цену как "15 000 000 ₽":
// разделители разрядов по локали, без копеек.
type PriceFormatter struct {
	tag    language.Tag
	symbol string
}

func NewPriceFormatter(tag language.Tag, unit currency.Unit) *PriceFormatter {
	symbol, ok := currencySymbols[unit]
	if !ok {
		symbol = unit.String()
	}
	return &PriceFormatter{tag: tag, symbol: symbol}
}

// NewRussianRubleFormatter - форматтер ru-RU / RUB
func NewRussianRubleFormatter() *PriceFormatter {
	return NewPriceFormatter(language.Russian, currency.RUB)
}

// Format безопасен для конкурентного вызова: принтер создается на каждый вызов
func (f *PriceFormatter) Format(price int64) string {
	p := message.NewPrinter(f.tag)
	return p.Sprintf("%d", price) + nbsp + f.symbol
}
