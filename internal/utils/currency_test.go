package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "Rs", CurrencySymbol("PKR"))
	assert.Equal(t, "₹", CurrencySymbol("INR"))
	assert.Equal(t, "€", CurrencySymbol("EUR"))
}

func TestCurrencySymbolUnknownFallsBackToDollar(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("ZZZ"))
	assert.Equal(t, "$", CurrencySymbol(""))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$19.50", FormatPrice(19.5, "USD"))
	assert.Equal(t, "Rs100.00", FormatPrice(100, "PKR"))
	assert.Equal(t, "$5.00", FormatPrice(5, "ZZZ"))
	assert.Equal(t, "$0.00", FormatPrice(0, "USD"))
}
