package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"lightbnb/src/core/ports"
)

// HealthService reports the health of the application's dependencies.
type HealthService struct {
	db  ports.Repository
	log *zerolog.Logger
}

// NewHealthService creates a new HealthService.
func NewHealthService(db ports.Repository, log *zerolog.Logger) *HealthService {
	return &HealthService{
		db:  db,
		log: log,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	if err := s.db.Health(ctx); err != nil {
		loggerFor(ctx, s.log).Warn().Err(err).Msg("database health check failed")
		status.Status = "degraded"
		status.Components["database"] = ComponentHealth{
			Status:  "unhealthy",
			Message: err.Error(),
		}
	} else {
		status.Components["database"] = ComponentHealth{Status: "healthy"}
	}

	return status
}
