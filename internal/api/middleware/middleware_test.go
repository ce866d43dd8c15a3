package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/zonejson/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		expected   string
		header     string
		wantStatus int
	}{
		{name: "no-key-configured", expected: "", header: "", wantStatus: http.StatusOK},
		{name: "correct-key", expected: "secret", header: "secret", wantStatus: http.StatusOK},
		{name: "wrong-key", expected: "secret", header: "nope", wantStatus: http.StatusUnauthorized},
		{name: "missing-key", expected: "secret", header: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine()
			r.Use(middleware.RequireAPIKey(tt.expected))
			r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest("GET", "/ping", nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSlogRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	r := newEngine()
	r.Use(middleware.SlogRequestLogger(logger))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))

	out := buf.String()
	assert.Contains(t, out, "api request")
	assert.Contains(t, out, "path=/ping")
	assert.Contains(t, out, "status=200")
}

func TestSlogRequestLoggerNilLogger(t *testing.T) {
	r := newEngine()
	r.Use(middleware.SlogRequestLogger(nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
