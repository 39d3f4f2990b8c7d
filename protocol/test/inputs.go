package test

import (
	"fmt"

	"github.com/tidepool-org/dka/protocol"
	"github.com/tidepool-org/dka/test"
)

func floatp(v float64) *float64 {
	return &v
}

// RandomInputs returns a complete snapshot with values in plausible
// pediatric DKA ranges. Every required field is set, so Calculate always
// yields a result for it.
func RandomInputs() protocol.PatientInputs {
	return protocol.PatientInputs{
		WeightKg:       floatp(float64(test.Faker.IntBetween(3, 80)) + test.Rand.Float64()),
		AgeYears:       floatp(float64(test.Faker.IntBetween(0, 17))),
		GlucoseMgDl:    floatp(float64(test.Faker.IntBetween(250, 1200))),
		PHVenous:       floatp(6.90 + test.Rand.Float64()*0.45),
		HCO3MmolL:      floatp(float64(test.Faker.IntBetween(1, 22))),
		SodiumMmolL:    floatp(float64(test.Faker.IntBetween(125, 155))),
		PotassiumMmolL: floatp(2.5 + test.Rand.Float64()*4),
		InShock:        test.Faker.Bool(),
	}
}

// RandomForm renders a random snapshot back into raw field text.
func RandomForm() protocol.Form {
	inputs := RandomInputs()
	return protocol.Form{
		WeightKg:       fmt.Sprintf("%g", *inputs.WeightKg),
		AgeYears:       fmt.Sprintf("%g", *inputs.AgeYears),
		GlucoseMgDl:    fmt.Sprintf("%g", *inputs.GlucoseMgDl),
		PHVenous:       fmt.Sprintf("%g", *inputs.PHVenous),
		HCO3MmolL:      fmt.Sprintf("%g", *inputs.HCO3MmolL),
		SodiumMmolL:    fmt.Sprintf("%g", *inputs.SodiumMmolL),
		PotassiumMmolL: fmt.Sprintf("%g", *inputs.PotassiumMmolL),
		InShock:        inputs.InShock,
	}
}
