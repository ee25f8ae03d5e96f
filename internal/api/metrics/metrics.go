// Package metrics defines and registers the custom Prometheus metrics of the
// time tracker API. HTTP request metrics come from the echoprometheus
// middleware; everything here is about clock operations.
//
// All metrics are registered with the default registry on package init via
// promauto and served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetracker"

// ── Clock metrics ─────────────────────────────────────────────────────────────

// ClockOperationsTotal counts clock operations by outcome.
// Labels:
//   - operation: "clock_in", "clock_out" or "view"
//   - result: "ok", "conflict", "not_found" or "internal"
var ClockOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clock_operations_total",
		Help:      "Total number of clock operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// SessionDurationHours observes the length of every completed session.
var SessionDurationHours = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "session_duration_hours",
		Help:      "Hours recorded by each clock out.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 4, 6, 8, 10, 12, 16, 24},
	},
)

// StoreOperationDuration measures how long a full operation against the time
// log file takes (load, modify, save).
// Label:
//   - operation: "clock_in", "clock_out" or "view"
var StoreOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Duration of clock operations including file load and save.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation"},
)
