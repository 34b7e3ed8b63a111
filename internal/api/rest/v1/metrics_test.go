//go:build unit
// +build unit

package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordsRouteTemplate(t *testing.T) {
	metrics := NewMetrics()

	r := gin.New()
	r.Use(metrics.Middleware())
	r.GET("/api/v1/faqs/:id", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	for _, path := range []string{"/api/v1/faqs/1", "/api/v1/faqs/2", "/nowhere"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	req, _ := http.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `modarflor_http_requests_total{method="GET",route="/api/v1/faqs/:id",status="200"} 2`)
	assert.Contains(t, body, `modarflor_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, "modarflor_http_request_duration_seconds_bucket")
	assert.Contains(t, body, "go_goroutines")
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		ping     PingFunc
		wantCode int
		wantBody string
	}{
		{
			name:     "database up",
			ping:     func(context.Context) error { return nil },
			wantCode: http.StatusOK,
			wantBody: `{"status":"ok","database":"ok"}`,
		},
		{
			name:     "database down",
			ping:     func(context.Context) error { return errors.New("connection refused") },
			wantCode: http.StatusServiceUnavailable,
			wantBody: `{"status":"degraded","database":"unreachable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.ping)

			c, w := newJSONContext(t, http.MethodGet, "/health", nil)
			handler.Health(c)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
