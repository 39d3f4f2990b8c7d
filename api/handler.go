package api

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Handler struct {
	logger *zap.SugaredLogger
}

type Params struct {
	fx.In

	Logger *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		logger: p.Logger,
	}
}
