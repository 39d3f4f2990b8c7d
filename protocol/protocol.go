package protocol

// Clinical defaults applied when an optional lab value is absent.
// These are secondary correction inputs, so a missing value falls back
// to a safe default instead of blocking the derivation.
const (
	DefaultHCO3MmolL      = 0
	DefaultSodiumMmolL    = 135
	DefaultPotassiumMmolL = 4.0
)

type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

type PotassiumStatus string

const (
	PotassiumCriticalLow PotassiumStatus = "criticalLow"
	PotassiumHigh        PotassiumStatus = "high"
	PotassiumNormal      PotassiumStatus = "normal"
)

// PatientInputs is a snapshot of the measurements the protocol derives from.
// WeightKg, GlucoseMgDl and PHVenous are required; the remaining labs fall
// back to their clinical defaults when nil.
type PatientInputs struct {
	WeightKg    *float64
	GlucoseMgDl *float64
	PHVenous    *float64

	HCO3MmolL      *float64
	SodiumMmolL    *float64
	PotassiumMmolL *float64

	// AgeYears is collected for the chart but not consumed by any derivation.
	AgeYears *float64

	// GlasgowComaScore is reserved. It is part of the intake form but no
	// current derivation reads it.
	GlasgowComaScore *int

	InShock bool
}

// DerivationResult is the full ISPAD 2022 management plan derived from a
// single input snapshot. It is recomputed atomically on every change.
type DerivationResult struct {
	Severity            Severity
	DehydrationFraction float64

	BolusVolumeMl     int
	Maintenance24hMl  int
	DeficitVolumeMl   int
	HourlyRateMlPerHr int

	InsulinStandardUnitsPerHr float64
	InsulinLowUnitsPerHr      float64

	CorrectedSodiumMmolL int
	PotassiumStatus      PotassiumStatus
}

// Calculate derives the management plan from the given snapshot. It returns
// nil while the snapshot is incomplete, i.e. when any of the required
// measurements is missing or the weight is not positive. The caller is
// expected to treat nil as "form still being filled in", not as an error.
func Calculate(inputs PatientInputs) *DerivationResult {
	if inputs.WeightKg == nil || inputs.GlucoseMgDl == nil || inputs.PHVenous == nil {
		return nil
	}

	weight := *inputs.WeightKg
	if weight <= 0 {
		return nil
	}

	hco3 := orDefault(inputs.HCO3MmolL, DefaultHCO3MmolL)
	sodium := orDefault(inputs.SodiumMmolL, DefaultSodiumMmolL)
	potassium := orDefault(inputs.PotassiumMmolL, DefaultPotassiumMmolL)

	severity, fraction := Classify(*inputs.PHVenous, hco3)
	bolus := Bolus(weight, inputs.InShock)
	maintenance := Maintenance24h(weight)
	deficit, rate := DeficitAndRate(weight, fraction, bolus, maintenance)
	standard, low := InsulinDoses(weight)

	return &DerivationResult{
		Severity:                  severity,
		DehydrationFraction:       fraction,
		BolusVolumeMl:             bolus,
		Maintenance24hMl:          maintenance,
		DeficitVolumeMl:           deficit,
		HourlyRateMlPerHr:         rate,
		InsulinStandardUnitsPerHr: standard,
		InsulinLowUnitsPerHr:      low,
		CorrectedSodiumMmolL:      CorrectedSodium(sodium, *inputs.GlucoseMgDl),
		PotassiumStatus:           ClassifyPotassium(potassium),
	}
}

func orDefault(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}
