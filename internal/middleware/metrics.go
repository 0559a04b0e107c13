package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salary_estimator_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "salary_estimator_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "path"},
	)

	predictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "salary_estimator_predictions_total",
			Help: "Prediction requests by outcome",
		},
		[]string{"outcome"},
	)

	predictedSalary = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "salary_estimator_predicted_salary",
			Help:    "Distribution of predicted salaries",
			Buckets: prometheus.ExponentialBuckets(100000, 2, 10),
		},
	)
)

// Metrics records request counts and latency. Paths are the matched route
// patterns, so label cardinality stays bounded.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		if err := c.Next(); err != nil {
			handleError(c, err)
		}

		path := c.Route().Path
		httpRequestsTotal.WithLabelValues(c.Method(), path, strconv.Itoa(c.Response().StatusCode())).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), path).Observe(time.Since(start).Seconds())

		return nil
	}
}

// RecordPrediction counts a prediction attempt. outcome is "ok" or an error code.
func RecordPrediction(outcome string, salary float64) {
	predictionsTotal.WithLabelValues(outcome).Inc()
	if outcome == "ok" {
		predictedSalary.Observe(salary)
	}
}
