package services

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// CurrencyFormatter renders amounts with a symbol and thousands separators.
type CurrencyFormatter struct {
	Symbol string
}

// Format renders v with two decimals, e.g. ₹1,234.50.
func (f CurrencyFormatter) Format(v float64) string {
	return f.Symbol + humanize.FormatFloat("#,###.##", v)
}

// FormatWhole renders v without decimals, as used on chart labels.
func (f CurrencyFormatter) FormatWhole(v float64) string {
	return f.Symbol + humanize.FormatFloat("#,###.", v)
}

// FormatPercent renders p with one decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
