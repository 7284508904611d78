package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger is a dependency whose reachability is reported by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping implements Pinger.
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler reports the state of the service dependencies
type HealthHandler struct {
	service string
	checks  map[string]Pinger
	timeout time.Duration
	log     *zap.Logger
}

// NewHealthHandler creates a HealthHandler. Nil checks are skipped.
func NewHealthHandler(service string, checks map[string]Pinger, log *zap.Logger) *HealthHandler {
	active := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			active[name] = p
		}
	}
	return &HealthHandler{service: service, checks: active, timeout: 2 * time.Second, log: log}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := "healthy"
	code := http.StatusOK
	results := make(map[string]string, len(h.checks))

	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			h.log.Warn("health check failed", zap.String("dependency", name), zap.Error(err))
			results[name] = "unavailable"
			status = "degraded"
			code = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	c.JSON(code, gin.H{
		"status":  status,
		"service": h.service,
		"checks":  results,
	})
}
