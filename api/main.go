package api

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/tidepool-org/dka/config"
	"github.com/tidepool-org/dka/logger"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	timeout := time.Duration(cfg.ServerTimeoutAmount) * time.Second
	e.Server.ReadTimeout = timeout
	e.Server.WriteTimeout = timeout

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// The calculator has no external dependencies, so the service is
			// ready as soon as the graph is up.
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

func loadConfig() (*config.Config, error) {
	cfg := config.New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Dependencies is the service DI graph, shared with the cmd tools.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			loadConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
	}
}

func MainLoop() {
	options := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(options...).Run()
}
