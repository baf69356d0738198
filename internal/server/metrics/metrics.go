// Package metrics defines the Prometheus metrics exported by the server.
// All metrics register with the default registry on package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hexplay"

// RequestsTotal counts handled requests.
// Labels:
//   - transport: "grpc" or "http"
//   - method: full gRPC method or HTTP route
//   - outcome: "ok", "invalid", "not_found", "conflict", "canceled" or "error"
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of handled requests by transport, method and outcome.",
	},
	[]string{"transport", "method", "outcome"},
)

// RequestDuration measures request latency end to end.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of handled requests by transport and method.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"transport", "method"},
)

// ObserveRequest records one handled request.
func ObserveRequest(transport, method, outcome string, seconds float64) {
	RequestsTotal.WithLabelValues(transport, method, outcome).Inc()
	RequestDuration.WithLabelValues(transport, method).Observe(seconds)
}
