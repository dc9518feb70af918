package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	BookingsCreated = prometheus.NewCounter(prometheus.CounterOpts{Name: "salon_bookings_created_total", Help: "Bookings stored."})
	ContactMessages = prometheus.NewCounter(prometheus.CounterOpts{Name: "salon_contact_messages_total", Help: "Contact messages stored."})
	ServicesSeeded  = prometheus.NewCounter(prometheus.CounterOpts{Name: "salon_services_seeded_total", Help: "Default services inserted into an empty catalog."})
	Notifications   = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "salon_notifications_total", Help: "Staff notifications by channel and outcome."},
		[]string{"channel", "status"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, BookingsCreated, ContactMessages, ServicesSeeded, Notifications)
}

// Handler records request count and latency per matched route.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Exposer serves the Prometheus exposition format.
func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
