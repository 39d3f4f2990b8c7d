package protocol

// Classify grades the acidosis and returns the severity together with the
// assumed dehydration fraction of body weight. The branches are evaluated
// in order of severity and the comparisons are strict, so a pH of exactly
// 7.10 or an HCO3 of exactly 5 falls through to the less severe branch.
func Classify(pH, hco3 float64) (Severity, float64) {
	if pH < 7.10 || hco3 < 5 {
		return SeveritySevere, 0.10
	}
	if pH < 7.20 || hco3 < 10 {
		return SeverityModerate, 0.07
	}
	return SeverityMild, 0.05
}
