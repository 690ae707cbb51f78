package utils

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// FormatWithPrecision rounds v half away from zero to precision decimals.
// Example: 9.866666 with precision 2 returns "9.87"
// Example: 12.5 with precision 0 returns "13"
// NaN and infinities are returned as "NaN", "+Inf" and "-Inf".
func FormatWithPrecision(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(int32(precision))
}

// FormatPercent formats a growth rate that is already a percentage, e.g. "9.87%".
func FormatPercent(v float64) string {
	return FormatWithPrecision(v, 2) + "%"
}
