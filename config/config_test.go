package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/dka/config"
)

var _ = Describe("Config", func() {
	AfterEach(func() {
		os.Unsetenv("DKA_HTTP_SERVER_PORT")
	})

	It("defaults the http port", func() {
		cfg := config.New()
		Expect(cfg.LoadFromEnv()).To(Succeed())
		Expect(cfg.HttpPort).To(Equal(uint16(8080)))
	})

	It("reads the http port from the environment", func() {
		os.Setenv("DKA_HTTP_SERVER_PORT", "9090")
		cfg := config.New()
		Expect(cfg.LoadFromEnv()).To(Succeed())
		Expect(cfg.HttpPort).To(Equal(uint16(9090)))
	})
})
