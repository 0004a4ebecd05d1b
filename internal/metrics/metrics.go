// Package metrics holds the Prometheus collectors of the backend.
package metrics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var collectors = []prometheus.Collector{
	requestCount,
	requestDuration,
	ledgerWrites,
	reportsRendered,
}

// Register registers all collectors with the default registry.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister unregisters all collectors.
//
// This is needed to cleanly exit and to create more than one router in tests.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var ledgerWrites = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_writes_total",
		Help: "How many ledger entries were written, partitioned by entry kind and audit log placement.",
	},
	[]string{"kind", "placement"},
)

var reportsRendered = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reports_rendered_total",
		Help: "How many reports were rendered, partitioned by report type and outcome.",
	},
	[]string{"report", "outcome"},
)

// LedgerWrite counts a write to a ledger entry. Use "created" as placement
// for new entries.
func LedgerWrite(kind, placement string) {
	ledgerWrites.WithLabelValues(kind, placement).Inc()
}

// LedgerWrites counts n writes of the same kind and placement.
func LedgerWrites(kind, placement string, n int) {
	ledgerWrites.WithLabelValues(kind, placement).Add(float64(n))
}

// ReportRendered counts a rendered report.
func ReportRendered(report string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	reportsRendered.WithLabelValues(report, outcome).Inc()
}

// Middleware updates the request metrics.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}
