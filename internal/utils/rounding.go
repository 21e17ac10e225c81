package utils

import "math"

// Round1 rounds to the nearest tenth of an hour.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to the nearest hundredth of an hour.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
