package protocol

import "math"

// InsulinDoses returns the standard (0.1 units/kg/hr) and low
// (0.05 units/kg/hr) infusion rate options, each rounded to two decimals.
// Both are advisory; the protocol does not pick one.
func InsulinDoses(weightKg float64) (standard, low float64) {
	return roundTwoPlaces(weightKg * 0.1), roundTwoPlaces(weightKg * 0.05)
}

func roundTwoPlaces(value float64) float64 {
	return math.Round(value*100) / 100
}
