package utils

import "github.com/shopspring/decimal"

// MinorUnitIncrement renders a currency's smallest representable amount,
// 10^-digits, as an exact decimal string.
// Example: 2 fraction digits returns "0.01"; 0 returns "1".
// Digits below zero mean the currency has no defined minor unit.
func MinorUnitIncrement(digits int) string {
	if digits < 0 {
		return "n/a"
	}
	return decimal.New(1, int32(-digits)).String()
}

// FormatWithPrecision formats an amount rounded to a currency's fraction digits.
// Example: amount 12.3456 with 2 digits returns "12.35"; with 0 digits "12".
func FormatWithPrecision(amount decimal.Decimal, digits int) string {
	return amount.Round(int32(digits)).String()
}
