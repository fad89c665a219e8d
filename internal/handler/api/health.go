package api

import (
	"context"
	"net/http"
	"time"

	"venue-marketplace/internal/pkg/clock"

	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ReadinessResponse struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

type HealthHandler struct {
	clock clock.Clock
	db    Pinger
}

func NewHealthHandler(clk clock.Clock, db Pinger) *HealthHandler {
	return &HealthHandler{clock: clk, db: db}
}

// Health reports liveness only; it never touches a dependency.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Ready(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, ReadinessResponse{Status: "unavailable", Reason: "database not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, ReadinessResponse{Status: "unavailable", Reason: "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, ReadinessResponse{Status: "ready"})
}
