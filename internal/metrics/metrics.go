// Package metrics declares the worker's Prometheus instrumentation.
//
// Grounded on the package-level prometheus.NewCounterVec/SummaryVec
// declarations in oasis-core's compute committee node (e.g.
// go/worker/compute/executor/committee/node.go), registered once via
// Register rather than in an init() side effect, so cmd/worker controls
// when registration happens.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// BatchesReported counts batches accepted via report_batch.
	BatchesReported = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "worker_batches_reported_total",
		Help: "Number of batches accepted from peer workers via report_batch.",
	})

	// BatchesServed counts batches returned via request_batch/request_batches.
	BatchesServed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "worker_batches_served_total",
		Help: "Number of batches returned to peers via request_batch or request_batches.",
	})

	// RequestBatchesSizeLimitHits counts request_batches calls that hit
	// the response size budget.
	RequestBatchesSizeLimitHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "worker_request_batches_size_limit_hits_total",
		Help: "Number of request_batches calls where the response size budget was reached.",
	})

	// SyncAttempts counts synchronize calls.
	SyncAttempts = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "worker_synchronize_attempts_total",
		Help: "Number of synchronize calls received from the primary.",
	})

	// SyncFailures counts synchronize calls that failed to complete.
	SyncFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "worker_synchronize_failures_total",
		Help: "Number of synchronize calls that returned an error.",
	})

	// SyncLatency observes synchronize call duration.
	SyncLatency = prometheus.NewSummary(prometheus.SummaryOpts{
		Name:       "worker_synchronize_latency_seconds",
		Help:       "Latency of synchronize calls, end to end.",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})
)

// Register registers every metric in this package with r. Called once at
// worker startup.
func Register(r prometheus.Registerer) {
	r.MustRegister(
		BatchesReported,
		BatchesServed,
		RequestBatchesSizeLimitHits,
		SyncAttempts,
		SyncFailures,
		SyncLatency,
	)
}
