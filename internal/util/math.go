package util

import (
	"math"
)

func RoundFloat64(f float64, n int) float64 {
	pow := math.Pow10(n)
	return math.Round(f*pow) / pow
}

// Percentage returns part/whole*100, or 0 when whole is not positive.
func Percentage(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}

func ClampNonNegative[T int | int64 | float64](v T) T {
	if v < 0 {
		return 0
	}
	return v
}
