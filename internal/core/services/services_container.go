package services

import (
	"github.com/SscSPs/surety_risk_app/internal/core/scoring"
	portssvc "github.com/SscSPs/surety_risk_app/internal/core/ports/services"
	"github.com/SscSPs/surety_risk_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, engine *scoring.Engine, options ...AssessmentOption) *portssvc.ServiceContainer {
	opts := append([]AssessmentOption{WithBatchLimits(cfg.BatchMaxSize, cfg.BatchConcurrency)}, options...)
	return &portssvc.ServiceContainer{
		Assessment: NewAssessmentService(engine, opts...),
	}
}
