// Package format renders amounts the way the calculator displays them.
package format

import (
	"math"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with the currency symbol, thousands
// separators and at most two fractional digits (e.g., "₹9,166.67", "₹110,000").
func Currency(amount float64) string {
	formatted := NumericCurrency(math.Abs(amount))
	if amount < 0 && formatted != "0" {
		return "-" + constants.CurrencySymbol + formatted
	}
	return constants.CurrencySymbol + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.5").
func NumericCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(constants.MaxFractionDigits)))
}

// Percent renders an annual rate such as 12.5 as "12.5%".
func Percent(rate float64) string {
	return printer.Sprint(number.Decimal(rate, number.MaxFractionDigits(constants.MaxFractionDigits))) + "%"
}
