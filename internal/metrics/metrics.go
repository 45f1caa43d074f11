package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServerMetrics struct {
	Requests  *prometheus.CounterVec
	LatencyMS *prometheus.HistogramVec
	Checkouts prometheus.Counter
	Restocks  prometheus.Counter
}

func NewServerMetrics() *ServerMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "toko",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "toko",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"method"})
	checkouts := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "toko",
		Name:      "checkouts_total",
		Help:      "Total number of completed checkouts.",
	})
	restocks := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "toko",
		Name:      "restocks_total",
		Help:      "Total number of restock operations.",
	})

	prometheus.MustRegister(requests, latency, checkouts, restocks)
	return &ServerMetrics{Requests: requests, LatencyMS: latency, Checkouts: checkouts, Restocks: restocks}
}

// Middleware records request counts and latency per HTTP method.
func (m *ServerMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.Requests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		m.LatencyMS.WithLabelValues(r.Method).Observe(float64(time.Since(start).Milliseconds()))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
