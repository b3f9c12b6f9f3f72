package view

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money renders a decimal amount with the store currency symbol,
// e.g. "₹249.00".
func Money(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

// Timestamp formats server timestamps for display; zero values render
// empty rather than the epoch.
func Timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 15:04")
}
