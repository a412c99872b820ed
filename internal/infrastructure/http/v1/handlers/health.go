package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stokado/internal/core/sequence"
	"stokado/internal/infrastructure/storage/postgres"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	pool      *postgres.Pool
	sequencer *sequence.Manager
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(pool *postgres.Pool, sequencer *sequence.Manager) *HealthHandler {
	return &HealthHandler{pool: pool, sequencer: sequencer}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()

	checks := map[string]string{}
	healthy := true

	// Check database connection
	if err := h.pool.Ping(ctx); err != nil {
		checks["database"] = "unhealthy: " + err.Error()
		healthy = false
	} else {
		checks["database"] = "healthy"
	}

	// Exercise the identifier pipeline end to end: the probe issues a
	// real identifier under a reserved prefix that business data never uses.
	seqStatus := h.sequencer.HealthCheck(ctx)
	if seqStatus.Healthy() {
		checks["sequence"] = "healthy"
	} else {
		checks["sequence"] = "unhealthy: " + seqStatus.Message
		healthy = false
	}

	status := "ok"
	code := http.StatusOK
	if !healthy {
		status = "error"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"checks": checks,
	})
}

// Sequence handles the identifier generation probe.
// GET /health/sequence
func (h *HealthHandler) Sequence(c *gin.Context) {
	status := h.sequencer.HealthCheck(c.Request.Context())

	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	stat := h.pool.Stat()

	c.JSON(http.StatusOK, gin.H{
		"app":     "stokado",
		"version": "0.1.0",
		"database": map[string]any{
			"total_conns":    stat.TotalConns(),
			"acquired_conns": stat.AcquiredConns(),
			"idle_conns":     stat.IdleConns(),
			"max_conns":      stat.MaxConns(),
		},
	})
}
