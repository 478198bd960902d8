//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounters(t *testing.T) {
	r := NewRecorder()

	r.ReservationCreated()
	r.ReservationCreated()
	r.ReservationRejected("date_unavailable")
	r.ReservationCancelled("not_found")
	r.NotificationSent("customer_confirmation")
	r.NotificationFailed("restaurant_alert")
	r.NotificationDropped("restaurant_alert")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.reservationsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.reservationsRejected.WithLabelValues("date_unavailable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.reservationsCancelled.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.notifications.WithLabelValues("customer_confirmation", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.notifications.WithLabelValues("restaurant_alert", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.notifications.WithLabelValues("restaurant_alert", "dropped")))
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	a.ReservationCreated()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.reservationsCreated))
}

func TestMiddlewareAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRecorder()

	engine := gin.New()
	engine.Use(r.Middleware())
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/metrics", gin.WrapH(r.Handler()))

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `braceria_http_request_duration_seconds_count{method="GET",route="/health",status="200"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}
