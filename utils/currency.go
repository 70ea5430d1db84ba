package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary amount with thousands separators and two
// decimals, e.g. 15000.5 -> "15,000.50". Display only; arithmetic stays in
// decimal everywhere.
func FormatAmount(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	out := strings.Join(groups, ",") + "." + decimalPart
	if negative {
		out = "-" + out
	}
	return out
}
