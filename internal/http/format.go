package http

import (
	"fmt"
	"strconv"

	"matchpoint/internal/core"
)

// formatAmount renders cents as a currency string, e.g. "€350.00".
func formatAmount(m core.Money, symbol string) string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := strconv.FormatInt(cents/100, 10) + "." + fmt.Sprintf("%02d", cents%100)
	if neg {
		return "-" + symbol + s
	}
	return symbol + s
}

// formatAverage renders an aggregate ratio, or the "-" placeholder when the
// denominator over the whole ledger was zero.
func formatAverage(a core.Average, symbol string) string {
	if !a.Valid {
		return "-"
	}
	return formatAmount(a.Amount, symbol)
}

// barWidth scales a value against the chart maximum as a rounded percent.
// Small non-zero values get a minimum width so the bar stays visible.
func barWidth(cents, maxCents int64) int {
	if maxCents <= 0 || cents <= 0 {
		return 0
	}
	width := int((cents*100 + maxCents/2) / maxCents)
	if width > 0 && width < 2 {
		width = 2
	}
	if width > 100 {
		width = 100
	}
	return width
}
