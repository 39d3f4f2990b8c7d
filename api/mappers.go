package api

import (
	"github.com/tidepool-org/dka/pointer"
	"github.com/tidepool-org/dka/protocol"
)

// CalculationRequest is a snapshot of the intake form. Every field is
// optional at the transport level; the protocol decides what is required.
type CalculationRequest struct {
	WeightKg         *float64 `json:"weightKg"`
	AgeYears         *float64 `json:"ageYears"`
	GlucoseMgDl      *float64 `json:"glucoseMgDl"`
	PHVenous         *float64 `json:"phVenous"`
	HCO3MmolL        *float64 `json:"hco3MmolL"`
	SodiumMmolL      *float64 `json:"sodiumMmolL"`
	PotassiumMmolL   *float64 `json:"potassiumMmolL"`
	GlasgowComaScore *int     `json:"glasgowComaScore"`
	InShock          *bool    `json:"inShock"`
}

type Calculation struct {
	Id       string              `json:"id"`
	Complete bool                `json:"complete"`
	Severity *string             `json:"severity,omitempty"`
	Results  *CalculationResults `json:"results,omitempty"`
}

type CalculationResults struct {
	DehydrationFraction       float64 `json:"dehydrationFraction"`
	BolusVolumeMl             int     `json:"bolusVolumeMl"`
	Maintenance24hMl          int     `json:"maintenance24hMl"`
	DeficitVolumeMl           int     `json:"deficitVolumeMl"`
	HourlyRateMlPerHr         int     `json:"hourlyRateMlPerHr"`
	InsulinStandardUnitsPerHr float64 `json:"insulinStandardUnitsPerHr"`
	InsulinLowUnitsPerHr      float64 `json:"insulinLowUnitsPerHr"`
	CorrectedSodiumMmolL      int     `json:"correctedSodiumMmolL"`
	PotassiumStatus           string  `json:"potassiumStatus"`
}

// NewCalculationDto wraps a derivation result for the wire. A nil result
// maps to an incomplete calculation, not an error.
func NewCalculationDto(id string, result *protocol.DerivationResult) Calculation {
	if result == nil {
		return Calculation{Id: id}
	}

	return Calculation{
		Id:       id,
		Complete: true,
		Severity: pointer.FromAny(string(result.Severity)),
		Results: &CalculationResults{
			DehydrationFraction:       result.DehydrationFraction,
			BolusVolumeMl:             result.BolusVolumeMl,
			Maintenance24hMl:          result.Maintenance24hMl,
			DeficitVolumeMl:           result.DeficitVolumeMl,
			HourlyRateMlPerHr:         result.HourlyRateMlPerHr,
			InsulinStandardUnitsPerHr: result.InsulinStandardUnitsPerHr,
			InsulinLowUnitsPerHr:      result.InsulinLowUnitsPerHr,
			CorrectedSodiumMmolL:      result.CorrectedSodiumMmolL,
			PotassiumStatus:           string(result.PotassiumStatus),
		},
	}
}
