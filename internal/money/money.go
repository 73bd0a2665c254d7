// Package money formats cent amounts for display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders cents as US dollars with thousands separators,
// e.g. 123456 -> "$1,234.56".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + printer.Sprintf("$%.2f", decimal.New(cents, -2).InexactFloat64())
}

// FormatDollars renders whole dollars, e.g. 4000 -> "$4,000".
func FormatDollars(dollars int64) string {
	return printer.Sprintf("$%d", dollars)
}
