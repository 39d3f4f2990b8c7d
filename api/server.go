package api

import (
	"github.com/brpaz/echozap"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/tidepool-org/dka/errors"
)

func NewServer(handler *Handler, healthCheck *HealthCheck, logger *zap.Logger) (*echo.Echo, error) {
	e := echo.New()

	// Skip request logging for the readiness probe
	skipper := RouteSkipper([]string{"/ready"})
	zapMiddleware := echozap.ZapLogger(logger)
	loggerMiddleware := func(next echo.HandlerFunc) echo.HandlerFunc {
		logged := zapMiddleware(next)
		return func(ec echo.Context) error {
			if skipper(ec) {
				return next(ec)
			}
			return logged(ec)
		}
	}

	e.Use(middleware.Recover())
	e.Use(loggerMiddleware)

	e.HTTPErrorHandler = errors.CustomHTTPErrorHandler

	e.GET("/ready", healthCheck.Ready)
	e.POST("/v1/dka/calculations", handler.CalculateDKAPlan)

	return e, nil
}
