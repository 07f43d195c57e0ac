package apiclient

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "studio",
			Subsystem: "apiclient",
			Name:      "requests_total",
			Help:      "Total number of backend API calls",
		},
		[]string{"endpoint", "method", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "studio",
			Subsystem: "apiclient",
			Name:      "request_duration_seconds",
			Help:      "Duration of backend API calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)
)

func init() {
	prometheus.MustRegister(requestsTotal, requestDuration)
}

// observe records one finished call. status 0 means no response was received.
func observe(endpoint, method string, status int, start time.Time) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	requestsTotal.WithLabelValues(endpoint, method, label).Inc()
	requestDuration.WithLabelValues(endpoint, method, label).Observe(time.Since(start).Seconds())
}
