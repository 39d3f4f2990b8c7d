package protocol_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/dka/protocol"
	protocolTest "github.com/tidepool-org/dka/protocol/test"
)

func floatp(v float64) *float64 {
	return &v
}

var _ = Describe("Calculate", func() {
	var inputs protocol.PatientInputs

	BeforeEach(func() {
		inputs = protocol.PatientInputs{
			WeightKg:       floatp(20),
			GlucoseMgDl:    floatp(600),
			PHVenous:       floatp(7.05),
			HCO3MmolL:      floatp(4),
			SodiumMmolL:    floatp(140),
			PotassiumMmolL: floatp(4.0),
		}
	})

	It("derives the full plan for a severe episode", func() {
		result := protocol.Calculate(inputs)
		Expect(result).ToNot(BeNil())
		Expect(result.Severity).To(Equal(protocol.SeveritySevere))
		Expect(result.DehydrationFraction).To(Equal(0.10))
		Expect(result.BolusVolumeMl).To(Equal(200))
		Expect(result.Maintenance24hMl).To(Equal(1500))
		Expect(result.DeficitVolumeMl).To(Equal(1800))
		Expect(result.HourlyRateMlPerHr).To(Equal(100))
		Expect(result.InsulinStandardUnitsPerHr).To(Equal(2.00))
		Expect(result.InsulinLowUnitsPerHr).To(Equal(1.00))
		Expect(result.CorrectedSodiumMmolL).To(Equal(148))
		Expect(result.PotassiumStatus).To(Equal(protocol.PotassiumNormal))
	})

	It("derives the full plan for a mild episode in shock", func() {
		result := protocol.Calculate(protocol.PatientInputs{
			WeightKg:    floatp(10),
			GlucoseMgDl: floatp(300),
			PHVenous:    floatp(7.25),
			HCO3MmolL:   floatp(12),
			InShock:     true,
		})
		Expect(result).ToNot(BeNil())
		Expect(result.Severity).To(Equal(protocol.SeverityMild))
		Expect(result.DehydrationFraction).To(Equal(0.05))
		Expect(result.BolusVolumeMl).To(Equal(200))
		Expect(result.Maintenance24hMl).To(Equal(1000))
		Expect(result.DeficitVolumeMl).To(Equal(300))
		Expect(result.HourlyRateMlPerHr).To(Equal(48))
	})

	It("returns no result when the weight is missing", func() {
		inputs.WeightKg = nil
		Expect(protocol.Calculate(inputs)).To(BeNil())
	})

	It("returns no result when the glucose is missing", func() {
		inputs.GlucoseMgDl = nil
		Expect(protocol.Calculate(inputs)).To(BeNil())
	})

	It("returns no result when the pH is missing", func() {
		inputs.PHVenous = nil
		Expect(protocol.Calculate(inputs)).To(BeNil())
	})

	It("returns no result when the weight is not positive", func() {
		inputs.WeightKg = floatp(0)
		Expect(protocol.Calculate(inputs)).To(BeNil())
		inputs.WeightKg = floatp(-4)
		Expect(protocol.Calculate(inputs)).To(BeNil())
	})

	It("is deterministic for identical snapshots", func() {
		random := protocolTest.RandomInputs()
		first := protocol.Calculate(random)
		second := protocol.Calculate(random)
		Expect(first).ToNot(BeNil())
		Expect(*first).To(Equal(*second))
	})

	Context("with optional labs missing", func() {
		BeforeEach(func() {
			inputs.PHVenous = floatp(7.30)
			inputs.HCO3MmolL = nil
			inputs.SodiumMmolL = nil
			inputs.PotassiumMmolL = nil
		})

		It("defaults the bicarbonate to zero, which reads as severe acidosis", func() {
			result := protocol.Calculate(inputs)
			Expect(result).ToNot(BeNil())
			Expect(result.Severity).To(Equal(protocol.SeveritySevere))
		})

		It("defaults the sodium to 135 for the correction", func() {
			result := protocol.Calculate(inputs)
			Expect(result).ToNot(BeNil())
			// 135 + 1.6 * (600-100)/100 = 143
			Expect(result.CorrectedSodiumMmolL).To(Equal(143))
		})

		It("defaults the potassium to 4.0", func() {
			result := protocol.Calculate(inputs)
			Expect(result).ToNot(BeNil())
			Expect(result.PotassiumStatus).To(Equal(protocol.PotassiumNormal))
		})
	})

	It("ignores the age and the Glasgow coma score", func() {
		base := protocol.Calculate(inputs)
		inputs.AgeYears = floatp(9)
		score := 12
		inputs.GlasgowComaScore = &score
		Expect(*protocol.Calculate(inputs)).To(Equal(*base))
	})
})
