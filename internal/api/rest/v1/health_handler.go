package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// PingFunc checks a dependency, e.g. the database connection
type PingFunc func(ctx context.Context) error

// HealthHandler defines the interface for the liveness endpoint
type HealthHandler interface {
	Health(ctx *gin.Context)
}

type healthHandler struct {
	pingDatabase PingFunc
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(pingDatabase PingFunc) HealthHandler {
	return &healthHandler{pingDatabase: pingDatabase}
}

// Health answers 200 when the database responds and 503 otherwise
func (handler *healthHandler) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := handler.pingDatabase(pingCtx); err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}

	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}
