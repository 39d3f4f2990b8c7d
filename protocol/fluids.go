package protocol

import "math"

// Bolus returns the initial resuscitation volume in ml. Shock doubles the
// per-kg rate from 10 to 20 ml/kg. No upper cap is applied, which differs
// from guidelines that cap the initial bolus at ~1000 ml; the uncapped
// behavior is intentional and pending clinical review.
func Bolus(weightKg float64, inShock bool) int {
	perKg := 10.0
	if inShock {
		perKg = 20.0
	}
	return int(math.Round(weightKg * perKg))
}

// Maintenance24h returns the daily maintenance fluid volume in ml per the
// Holliday-Segar rule. The piecewise segments are continuous at the 10 kg
// and 20 kg breakpoints.
func Maintenance24h(weightKg float64) int {
	var ml float64
	switch {
	case weightKg <= 10:
		ml = weightKg * 100
	case weightKg <= 20:
		ml = 1000 + (weightKg-10)*50
	default:
		ml = 1500 + (weightKg-20)*20
	}
	return int(math.Round(ml))
}

// DeficitAndRate returns the remaining fluid deficit in ml and the combined
// hourly infusion rate in ml/hr. The bolus already administered is
// subtracted from the estimated total deficit, floored at zero. The deficit
// is replaced evenly over 48 hours and maintenance over 24 hours; the two
// rates are summed into a single infusion rate.
//
// The deficit is rounded to a whole ml before the rate division so that the
// displayed rate matches the rounded deficit it was derived from.
func DeficitAndRate(weightKg, dehydrationFraction float64, bolusMl, maintenance24hMl int) (int, int) {
	total := weightKg * dehydrationFraction * 1000
	deficit := int(math.Round(math.Max(0, total-float64(bolusMl))))
	rate := int(math.Round(float64(deficit)/48 + float64(maintenance24hMl)/24))
	return deficit, rate
}
