package output

import "github.com/shopspring/decimal"

// FormatCurrency formats a decimal as currency with two decimal places
func FormatCurrency(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
