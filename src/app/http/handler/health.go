// Package handler binds HTTP requests to the listing services and writes
// their results through the response package.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lightbnb/src/core/usecase"
)

type HealthHandler struct {
	healthService *usecase.HealthService
}

func NewHealthHandler(healthService *usecase.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// Health is the liveness probe; it does not touch the database.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// DetailedHealth pings the database and answers 503 while it is unreachable.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	status := h.healthService.Check(c.Request.Context())
	code := http.StatusOK
	if status.Status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
