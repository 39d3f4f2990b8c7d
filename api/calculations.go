package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tidepool-org/dka/pointer"
	"github.com/tidepool-org/dka/protocol"
)

// CalculateDKAPlan derives a management plan from the posted snapshot.
// An incomplete snapshot is not an error; the response simply carries no
// results so the consumer can show a neutral "incomplete" state.
func (h *Handler) CalculateDKAPlan(ec echo.Context) error {
	dto := CalculationRequest{}
	if err := ec.Bind(&dto); err != nil {
		return err
	}

	result := protocol.Calculate(NewPatientInputs(dto))
	calculation := NewCalculationDto(uuid.NewString(), result)
	if result != nil {
		h.logger.Debugw("derived dka plan",
			"calculationId", calculation.Id,
			"severity", result.Severity,
			"potassiumStatus", result.PotassiumStatus,
		)
	}

	return ec.JSON(http.StatusOK, calculation)
}

// NewPatientInputs maps the transport dto onto a protocol snapshot.
func NewPatientInputs(dto CalculationRequest) protocol.PatientInputs {
	return protocol.PatientInputs{
		WeightKg:         dto.WeightKg,
		GlucoseMgDl:      dto.GlucoseMgDl,
		PHVenous:         dto.PHVenous,
		HCO3MmolL:        dto.HCO3MmolL,
		SodiumMmolL:      dto.SodiumMmolL,
		PotassiumMmolL:   dto.PotassiumMmolL,
		AgeYears:         dto.AgeYears,
		GlasgowComaScore: dto.GlasgowComaScore,
		InShock:          pointer.ToBool(dto.InShock),
	}
}
