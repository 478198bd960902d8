package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "braceria"

// Recorder owns a private registry so tests can build as many as they like.
type Recorder struct {
	registry *prometheus.Registry

	reservationsCreated   prometheus.Counter
	reservationsRejected  *prometheus.CounterVec
	reservationsCancelled *prometheus.CounterVec
	notifications         *prometheus.CounterVec
	httpDuration          *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		reservationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_created_total",
			Help:      "Count of reservations committed.",
		}),
		reservationsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_rejected_total",
			Help:      "Count of reservation requests rejected by reason.",
		}, []string{"reason"}),
		reservationsCancelled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_cancel_requests_total",
			Help:      "Count of cancellation requests by outcome.",
		}, []string{"outcome"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Count of email notifications by kind and status.",
		}, []string{"kind", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.reservationsCreated,
		r.reservationsRejected,
		r.reservationsCancelled,
		r.notifications,
		r.httpDuration,
	)
	return r
}

func (r *Recorder) ReservationCreated() {
	r.reservationsCreated.Inc()
}

func (r *Recorder) ReservationRejected(reason string) {
	r.reservationsRejected.WithLabelValues(reason).Inc()
}

func (r *Recorder) ReservationCancelled(outcome string) {
	r.reservationsCancelled.WithLabelValues(outcome).Inc()
}

func (r *Recorder) NotificationSent(kind string) {
	r.notifications.WithLabelValues(kind, "sent").Inc()
}

func (r *Recorder) NotificationFailed(kind string) {
	r.notifications.WithLabelValues(kind, "failed").Inc()
}

func (r *Recorder) NotificationDropped(kind string) {
	r.notifications.WithLabelValues(kind, "dropped").Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware observes request duration labelled by the matched route template.
func (r *Recorder) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.httpDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
