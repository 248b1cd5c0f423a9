// Whole-pound amounts for the tracker page
package money

import (
	"math/big"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var symbol = message.NewPrinter(language.BritishEnglish).Sprint(currency.NarrowSymbol(currency.GBP))

// Format renders a whole amount, e.g. £1,234,567
func Format(amount *big.Int) string {
	if amount == nil {
		return symbol + "0"
	}
	// BigComma takes the absolute value of its argument in place
	return symbol + humanize.BigComma(new(big.Int).Set(amount))
}

// FormatInt is Format for ordinary integers
func FormatInt(amount int64) string {
	return symbol + humanize.Comma(amount)
}
