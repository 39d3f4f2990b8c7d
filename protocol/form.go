package protocol

import (
	"strconv"
	"strings"
)

// Form holds the raw text of each intake field, mirroring a chart that is
// still being filled in. Fields that fail to parse as decimals are treated
// as absent: required ones make Calculate return no result, optional ones
// fall back to their clinical defaults.
type Form struct {
	WeightKg         string
	AgeYears         string
	GlucoseMgDl      string
	PHVenous         string
	HCO3MmolL        string
	SodiumMmolL      string
	PotassiumMmolL   string
	GlasgowComaScore string
	InShock          bool
}

// Inputs parses the form into a snapshot. Parsing never fails; malformed
// values simply come back nil.
func (f Form) Inputs() PatientInputs {
	return PatientInputs{
		WeightKg:         parseDecimal(f.WeightKg),
		GlucoseMgDl:      parseDecimal(f.GlucoseMgDl),
		PHVenous:         parseDecimal(f.PHVenous),
		HCO3MmolL:        parseDecimal(f.HCO3MmolL),
		SodiumMmolL:      parseDecimal(f.SodiumMmolL),
		PotassiumMmolL:   parseDecimal(f.PotassiumMmolL),
		AgeYears:         parseDecimal(f.AgeYears),
		GlasgowComaScore: parseScore(f.GlasgowComaScore),
		InShock:          f.InShock,
	}
}

func parseDecimal(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return nil
	}
	return &value
}

func parseScore(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &value
}
