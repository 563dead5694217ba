package models

import (
	"golang.org/x/text/currency"
)

// DefaultCurrency is used when a user profile does not specify one.
const DefaultCurrency = "USD"

// validCurrency reports whether code is a well-formed ISO 4217 currency code.
func validCurrency(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}
