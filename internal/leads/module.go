// Package leads wires the skip trace pipeline into the HTTP application.
package leads

import (
	apphttp "realtool_backend/internal/http"
	"realtool_backend/internal/leads/handler"
	"realtool_backend/internal/leads/scoring"
	"realtool_backend/internal/leads/service"
	"realtool_backend/platform/config"
	"realtool_backend/platform/logger"
	"realtool_backend/platform/validator"
)

// Module bundles the leads service and its HTTP handler.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

// NewModule composes the pipeline service. analyzer may be nil when no AI
// credential is configured.
func NewModule(source service.SheetSource, cfg config.SheetsConfig, weights scoring.Weights, analyzer service.LeadAnalyzer, log *logger.Logger) *Module {
	svc := service.New(source, cfg, weights, analyzer, log)
	return &Module{
		service: svc,
		handler: handler.New(svc, validator.New(), log),
	}
}

// Name implements apphttp.Module.
func (m *Module) Name() string { return "leads" }

// RegisterRoutes implements apphttp.Module.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/leads"))
}

// Service exposes the pipeline service for non-HTTP consumers.
func (m *Module) Service() *service.Service {
	return m.service
}
