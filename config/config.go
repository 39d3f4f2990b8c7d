package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort            uint16 `envconfig:"DKA_HTTP_SERVER_PORT" default:"8080" required:"true"`
	ServerTimeoutAmount int    `envconfig:"DKA_SERVER_TIMEOUT_AMOUNT" default:"20" required:"true"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}
