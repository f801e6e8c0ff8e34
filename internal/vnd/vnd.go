// Package vnd formats integer VND amounts for display in the vi-VN locale.
package vnd

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// Format renders an amount with Vietnamese digit grouping and the đồng sign,
// e.g. 1500000 → "1.500.000 ₫".
func Format(amount int64) string {
	return printer.Sprintf("%d ₫", amount)
}

// FormatNumber renders a bare count with Vietnamese digit grouping.
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}
