// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records application metrics. It satisfies the horoscope
// service's Metrics interface.
type Collector struct {
	horoscopesGenerated *prometheus.CounterVec
	viewsRecorded       prometheus.Counter
	httpStatus          *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		horoscopesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "horoscope_generated_total",
			Help: "Total number of daily horoscopes generated, by zodiac sign",
		}, []string{"sign"}),
		viewsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "horoscope_views_recorded_total",
			Help: "Total number of view history records written",
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "horoscope_http_status_total",
			Help: "Total HTTP responses by status code",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.horoscopesGenerated,
		c.viewsRecorded,
		c.httpStatus,
	)

	return c
}

// RecordHoroscopeGenerated counts a freshly generated horoscope.
func (c *Collector) RecordHoroscopeGenerated(sign string) {
	c.horoscopesGenerated.WithLabelValues(sign).Inc()
}

// RecordViewRecorded counts a view history upsert.
func (c *Collector) RecordViewRecorded() {
	c.viewsRecorded.Inc()
}

// RecordHTTPStatus counts a response status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// statusRecorder captures the status code written to a ResponseWriter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

// Middleware records the status code of every response.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sr, r)
		c.RecordHTTPStatus(sr.status)
	})
}

// Handler returns the HTTP handler serving the Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
