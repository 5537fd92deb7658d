// Package format renders monetary amounts and prose dates for client-facing
// documents.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var symbols = map[string]string{
	"USD": "$",
	"MXN": "$",
	"ARS": "$",
	"COP": "$",
	"CLP": "$",
	"EUR": "€",
	"PEN": "S/",
}

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Currency renders an amount with the locale's digit grouping, two decimal
// places, and the currency's symbol and code, e.g. "$1,234.50 USD" under
// es-MX. Unknown locales fall back to English grouping.
func Currency(amount decimal.Decimal, code, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	sym, ok := symbols[code]
	if !ok {
		sym = "$"
	}
	f, _ := amount.Round(2).Float64()
	p := message.NewPrinter(tag)
	return p.Sprintf("%s%v %s", sym,
		number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)), code)
}

// LongDate renders a date in Spanish prose form, e.g. "15 de enero de 2025".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}
