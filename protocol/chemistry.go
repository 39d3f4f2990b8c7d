package protocol

import "math"

// CorrectedSodium applies the Katz correction for osmotic dilution caused
// by hyperglycemia, rounded to the nearest whole mmol/L. Glucose below
// 100 mg/dL lowers the corrected value below the measured one; no floor is
// applied.
func CorrectedSodium(measuredNa, glucoseMgDl float64) int {
	return int(math.Round(measuredNa + 1.6*((glucoseMgDl-100)/100)))
}

// ClassifyPotassium grades the serum potassium. Both comparisons are
// strict, so 3.0 and 5.5 are normal. The status is informational only and
// never alters another derivation; acting on it (e.g. holding insulin when
// potassium is critically low) is left to the clinician.
func ClassifyPotassium(k float64) PotassiumStatus {
	if k < 3.0 {
		return PotassiumCriticalLow
	}
	if k > 5.5 {
		return PotassiumHigh
	}
	return PotassiumNormal
}
