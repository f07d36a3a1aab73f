// Package metrics defines all custom Prometheus metrics for the timetrack
// API. It is the single source of truth for metric names, labels, and help
// strings; registration happens on import via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timetrack"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TimeEntriesWrittenTotal counts successful time entry writes.
// Label:
//   - op: "create", "update", or "delete"
var TimeEntriesWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "time_entries_written_total",
		Help:      "Total number of persisted time entry writes, by operation.",
	},
	[]string{"op"},
)

// QuotaRejectionsTotal counts writes rejected by the daily-hours quota.
var QuotaRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quota_rejections_total",
		Help:      "Total number of time entry writes rejected by the 24h daily quota.",
	},
)

// ExportsGeneratedTotal counts generated PDF reports.
// Label:
//   - report: "time" or "user"
var ExportsGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_generated_total",
		Help:      "Total number of PDF reports generated, by report kind.",
	},
	[]string{"report"},
)
