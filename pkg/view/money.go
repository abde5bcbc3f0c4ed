package view

import "fmt"

// FormatMoney renders a cents amount with its currency symbol.
func FormatMoney(currency string, cents int64) string {
	major := float64(cents) / 100.0
	switch currency {
	case "ARS":
		return fmt.Sprintf("$%.2f", major)
	case "EUR":
		return fmt.Sprintf("€%.2f", major)
	case "USD":
		return fmt.Sprintf("US$%.2f", major)
	default:
		return fmt.Sprintf("%.2f %s", major, currency)
	}
}

type Money struct {
	Cents     int64  `json:"cents"`
	Currency  string `json:"currency"`
	Formatted string `json:"formatted"`
}

func MoneyFromCents(cents int64, currency string) Money {
	return Money{Cents: cents, Currency: currency, Formatted: FormatMoney(currency, cents)}
}
