package common

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders a monetary amount as a grouped USD string, e.g. "$1,234.56".
func FormatAmount(amount decimal.Decimal) string {
	v, _ := amount.Round(2).Float64()
	return usPrinter.Sprintf("$%.2f", v)
}
