package utils

import "fmt"

// currencySymbols maps supported currency codes to display symbols.
var currencySymbols = map[string]string{
	"USD": "$",
	"PKR": "Rs",
	"INR": "₹",
	"EUR": "€",
}

// CurrencySymbol returns the display symbol for a currency code,
// falling back to "$" for unknown codes.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return "$"
}

// FormatPrice renders an amount as symbol plus exactly two decimal places.
// No locale-aware grouping separators.
func FormatPrice(amount float64, code string) string {
	return fmt.Sprintf("%s%.2f", CurrencySymbol(code), amount)
}
