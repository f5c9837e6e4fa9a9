package helpers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as dollars with exactly two decimals.
func FormatMoney(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// LineTotal multiplies a unit price by a quantity without float drift.
func LineTotal(price float64, quantity int) string {
	total := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
	return "$" + total.StringFixed(2)
}

// Capitalize upper-cases the first rune and leaves the rest untouched.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// ShortID keeps the last n characters of an identifier.
func ShortID(id string, n int) string {
	runes := []rune(strings.TrimSpace(id))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[len(runes)-n:])
}
