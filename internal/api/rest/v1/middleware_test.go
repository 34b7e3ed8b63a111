//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/kagailawrence/modarflor/internal/domain/users"
	"github.com/kagailawrence/modarflor/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingLogger keeps the first argument of every call per level
type recordingLogger struct {
	mu      sync.Mutex
	entries map[string][][]interface{}
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{entries: make(map[string][][]interface{})}
}

func (l *recordingLogger) record(level string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[level] = append(l.entries[level], args)
}

func (l *recordingLogger) get(level string) [][]interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.entries[level]
}

func (l *recordingLogger) Debug(args ...interface{}) { l.record("debug", args) }
func (l *recordingLogger) Info(args ...interface{})  { l.record("info", args) }
func (l *recordingLogger) Warn(args ...interface{})  { l.record("warn", args) }
func (l *recordingLogger) Error(args ...interface{}) { l.record("error", args) }
func (l *recordingLogger) Fatal(args ...interface{}) { l.record("fatal", args) }
func (l *recordingLogger) Panic(args ...interface{}) { l.record("panic", args) }

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperr.Invalid("bad"), http.StatusBadRequest},
		{fmt.Errorf("%w: expired", apperr.ErrUnauthorized), http.StatusUnauthorized},
		{apperr.ErrForbidden, http.StatusForbidden},
		{apperr.NotFound("faq", 1), http.StatusNotFound},
		{fmt.Errorf("faq: %w", apperr.ErrConflict), http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestRespondNoContent(t *testing.T) {
	c, w := newJSONContext(t, http.MethodDelete, "/faqs/1", nil)

	respondNoContent(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.True(t, c.Writer.Written())
}

func newAuthEngine(authService users.AuthService) *gin.Engine {
	r := gin.New()
	r.GET("/me", Authenticate(authService), func(ctx *gin.Context) {
		claims, _ := currentClaims(ctx)
		ctx.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	r.POST("/admin", Authenticate(authService), RequireAdmin(), func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("Authenticate", mock.Anything, "good-token").Return(viewerClaims, nil)
	mockAuthService.On("Authenticate", mock.Anything, "expired-token").
		Return(nil, fmt.Errorf("%w: token expired", apperr.ErrUnauthorized))

	r := newAuthEngine(mockAuthService)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer good-token", http.StatusOK},
		{"lowercase scheme", "bearer good-token", http.StatusOK},
		{"expired token", "Bearer expired-token", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"basic scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.JSONEq(t, `{"user_id":2}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"message"`)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	mockAuthService := new(MockAuthService)
	mockAuthService.On("Authenticate", mock.Anything, "admin-token").Return(adminClaims, nil)
	mockAuthService.On("Authenticate", mock.Anything, "viewer-token").Return(viewerClaims, nil)

	r := newAuthEngine(mockAuthService)

	for token, want := range map[string]int{
		"admin-token":  http.StatusNoContent,
		"viewer-token": http.StatusForbidden,
	} {
		req, _ := http.NewRequest(http.MethodPost, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, token)
	}
}

func TestRequireAdmin_WithoutAuthenticate(t *testing.T) {
	r := gin.New()
	r.GET("/", RequireAdmin(), func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(ctx *gin.Context) { ctx.String(http.StatusOK, ctx.GetString(requestIDKey)) })

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, w.Body.String())

	req, _ = http.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestAccessLog(t *testing.T) {
	log := newRecordingLogger()

	r := gin.New()
	r.Use(RequestID(), AccessLog(log))
	r.GET("/ok", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/missing", func(ctx *gin.Context) { respondError(ctx, apperr.NotFound("faq", 1)) })
	r.GET("/fail", func(ctx *gin.Context) { respondError(ctx, errors.New("disk full")) })

	for _, path := range []string{"/ok", "/missing", "/fail"} {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	require.Len(t, log.get("info"), 1)
	require.Len(t, log.get("warn"), 1)
	require.Len(t, log.get("error"), 1)

	errorArgs := log.get("error")[0]
	assert.Equal(t, "request handled", errorArgs[0])
	assert.Contains(t, fmt.Sprint(errorArgs...), "disk full")
	assert.Contains(t, errorArgs, "/fail")
}
