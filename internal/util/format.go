package util

import (
	"math"
	"strconv"
)

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// FormatFloat formats v with fixed precision. NaN renders as "NaN".
func FormatFloat(v float64, prec int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// FormatSignedPercent renders 93.2 as "+93.2%".
func FormatSignedPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', 1, 64)
	if p >= 0 {
		s = "+" + s
	}
	return s + "%"
}
