package protocol_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/dka/protocol"
)

var _ = Describe("Classify", func() {
	It("grades a low pH as severe", func() {
		severity, fraction := protocol.Classify(7.09, 20)
		Expect(severity).To(Equal(protocol.SeveritySevere))
		Expect(fraction).To(Equal(0.10))
	})

	It("grades a low bicarbonate as severe regardless of pH", func() {
		severity, _ := protocol.Classify(7.35, 4.9)
		Expect(severity).To(Equal(protocol.SeveritySevere))
	})

	It("grades a pH of exactly 7.10 as moderate, not severe", func() {
		severity, fraction := protocol.Classify(7.10, 20)
		Expect(severity).To(Equal(protocol.SeverityModerate))
		Expect(fraction).To(Equal(0.07))
	})

	It("grades a bicarbonate of exactly 5 as moderate, not severe", func() {
		severity, _ := protocol.Classify(7.25, 5)
		Expect(severity).To(Equal(protocol.SeverityModerate))
	})

	It("grades a pH of exactly 7.20 as mild, not moderate", func() {
		severity, fraction := protocol.Classify(7.20, 20)
		Expect(severity).To(Equal(protocol.SeverityMild))
		Expect(fraction).To(Equal(0.05))
	})

	It("grades a bicarbonate of exactly 10 as mild, not moderate", func() {
		severity, _ := protocol.Classify(7.30, 10)
		Expect(severity).To(Equal(protocol.SeverityMild))
	})

	It("grades a reassuring gas as mild", func() {
		severity, fraction := protocol.Classify(7.32, 18)
		Expect(severity).To(Equal(protocol.SeverityMild))
		Expect(fraction).To(Equal(0.05))
	})
})
