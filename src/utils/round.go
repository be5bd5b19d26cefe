package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Round rounds the exact binary value of v half away from zero to places decimals, so
// 1.005 (stored as 1.00499...) rounds to 1.00.
func Round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	return decimal.NewFromFloatWithExponent(v, -places).InexactFloat64()
}

// FormatPercent renders v as a percentage string with two decimals, e.g. "4.31%".
func FormatPercent(v float64) string {
	return decimal.NewFromFloatWithExponent(v, -2).StringFixed(2) + "%"
}

// ParsePercent reads back a value produced by FormatPercent. Unparsable input is 0.
func ParsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%")), 64)
	if err != nil {
		return 0
	}

	return v
}

// ParsePositive parses a spreadsheet cell as a finite number greater than zero.
func ParsePositive(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}

	return v, true
}
