package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.English)

// FormatMoney renders n as a dollar amount with thousands separators.
func FormatMoney(n int) string {
	return usPrinter.Sprintf("$%d", n)
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return usPrinter.Sprintf("%d", n)
}
