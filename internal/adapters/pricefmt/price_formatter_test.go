package pricefmt

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// normalizeSpaces заменяет любые пробельные символы (в т.ч. неразрывные) обычным пробелом
func normalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func TestPriceFormatter_RussianRuble(t *testing.T) {
	f := NewRussianRubleFormatter()

	tests := []struct {
		price int64
		want  string
	}{
		{price: 0, want: "0 ₽"},
		{price: 999, want: "999 ₽"},
		{price: 6_800_000, want: "6 800 000 ₽"},
		{price: 15_000_000, want: "15 000 000 ₽"},
		{price: 50_000_000, want: "50 000 000 ₽"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeSpaces(f.Format(tt.price)))
	}
}

func TestPriceFormatter_SymbolIsSeparatedByNonBreakingSpace(t *testing.T) {
	got := NewRussianRubleFormatter().Format(1000)
	assert.True(t, strings.HasSuffix(got, "\u00a0₽"), "got %q", got)
}

func TestPriceFormatter_OtherCurrency(t *testing.T) {
	assert.Equal(t, "1 000 €", normalizeSpaces(NewPriceFormatter(language.Russian, currency.EUR).Format(1000)))

	// нет символа в таблице - печатаем ISO-код
	assert.Equal(t, "1 000 GBP", normalizeSpaces(NewPriceFormatter(language.Russian, currency.GBP).Format(1000)))
}
