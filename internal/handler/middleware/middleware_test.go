//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"braceria-backend/internal/handler/httperr"
	"braceria-backend/internal/handler/middleware"
	"braceria-backend/internal/pkg/config"
	commonhttptest "braceria-backend/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewLogger(config.NewTestConfig().Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func TestRequestTimeout(t *testing.T) {
	engine := newEngine()
	engine.Use(middleware.RequestTimeout(50 * time.Millisecond))

	var deadline time.Time
	var hasDeadline bool
	engine.GET("/slow", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now(), deadline, time.Second)
}

func TestRequestIDIsEchoed(t *testing.T) {
	engine := newEngine()
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("incoming id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("missing id is generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})
}

func TestErrorBodyShape(t *testing.T) {
	engine := newEngine()
	engine.GET("/fail", func(c *gin.Context) {
		httperr.AbortWithCode(c, http.StatusBadRequest, errors.New("boom"), "Data richiesta", "DATE_REQUIRED")
	})
	engine.GET("/panic", func(_ *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Data richiesta"},"detail":{"code":"DATE_REQUIRED"}}`, w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]any{"code": "INTERNAL_ERROR"}, body["detail"])
}

func TestCORS(t *testing.T) {
	preflight := func(cfg config.CORSConfig, origin string) *httptest.ResponseRecorder {
		gin.SetMode(gin.TestMode)
		engine := gin.New()
		engine.Use(middleware.NewCORSMiddleware(cfg))
		engine.POST("/api/braceria/prenota", func(c *gin.Context) { c.Status(http.StatusCreated) })

		req := httptest.NewRequest(http.MethodOptions, "/api/braceria/prenota", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		return w
	}

	t.Run("wildcard allows any origin", func(t *testing.T) {
		w := preflight(config.NewTestConfig().CORS, "https://www.braceria.example")

		assert.Equal(t, http.StatusNoContent, w.Code)
		commonhttptest.AssertHeaders(t, w, map[string]string{"Access-Control-Allow-Origin": "*"})
	})

	t.Run("explicit list rejects other origins", func(t *testing.T) {
		cfg := config.NewTestConfig().CORS
		cfg.AllowOrigins = []string{"https://www.braceria.example"}

		ok := preflight(cfg, "https://www.braceria.example")
		commonhttptest.AssertHeaders(t, ok, map[string]string{"Access-Control-Allow-Origin": "https://www.braceria.example"})

		denied := preflight(cfg, "https://evil.example")
		assert.Equal(t, http.StatusForbidden, denied.Code)
	})
}
