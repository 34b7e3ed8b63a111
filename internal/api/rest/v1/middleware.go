package v1

import (
	"net/http"
	"strings"
	"time"

	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	claimsKey    = "claims"
)

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it in the response
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := strings.TrimSpace(ctx.GetHeader(RequestIDHeader))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// AccessLog writes one record per request. Errors attached with ctx.Error are logged
// with the record; they never reach the client.
func AccessLog(log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		status := ctx.Writer.Status()
		args := []interface{}{
			"request handled",
			"request_id", ctx.GetString(requestIDKey),
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", ctx.ClientIP(),
		}
		if len(ctx.Errors) > 0 {
			args = append(args, "error", ctx.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error(args...)
		case status >= http.StatusBadRequest:
			log.Warn(args...)
		default:
			log.Info(args...)
		}
	}
}

// Authenticate requires a valid "Authorization: Bearer <token>" header and stores the claims
func Authenticate(authService users.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			respondMessage(ctx, http.StatusUnauthorized, "missing or malformed bearer token")
			return
		}

		claims, err := authService.Authenticate(ctx.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.Set(claimsKey, claims)
		ctx.Next()
	}
}

// RequireAdmin rejects authenticated callers that do not hold the Admin role.
// It must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := currentClaims(ctx)
		if !ok {
			respondMessage(ctx, http.StatusUnauthorized, "authentication required")
			return
		}
		if !claims.IsAdmin() {
			respondMessage(ctx, http.StatusForbidden, "admin role required")
			return
		}
		ctx.Next()
	}
}

// currentClaims returns the claims stored by Authenticate
func currentClaims(ctx *gin.Context) (*users.Claims, bool) {
	value, exists := ctx.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*users.Claims)
	return claims, ok && claims != nil
}
