package types

import (
	"strings"

	ierr "github.com/featurekit/featurekit/internal/errors"
)

// CURRENCY_CODES_SYMBOLS is a map of 3 digit ISO currency codes to their symbols
var CURRENCY_CODES_SYMBOLS = map[string]string{
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"aud": "AU$",
	"cad": "CA$",
	"chf": "CHF",
	"sek": "kr",
	"nzd": "NZ$",
	"hkd": "HK$",
	"sgd": "S$",
	"jpy": "¥",
	"cny": "¥",
	"inr": "₹",
	"brl": "R$",
	"rub": "₽",
	"mxn": "MX$",
	"krw": "₩",
	"try": "₺",
	"zar": "R",
	"myr": "RM",
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	if symbol, ok := CURRENCY_CODES_SYMBOLS[strings.ToLower(code)]; ok {
		return symbol
	}
	return code
}

// ValidateCurrencyCode checks the code is a lowercase 3 letter ISO code.
func ValidateCurrencyCode(code string) error {
	if len(code) != 3 || code != strings.ToLower(code) {
		return ierr.NewError("invalid currency code").
			WithHintf("Currency must be a lowercase 3 letter ISO code, got %q", code).
			Mark(ierr.ErrValidation)
	}
	return nil
}
