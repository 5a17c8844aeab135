// Package observability exposes the Prometheus collectors of the engine.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	analyticsComputations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lifesync",
		Subsystem: "analytics",
		Name:      "computations_total",
		Help:      "Number of analytics views computed, labeled by operation.",
	}, []string{"operation"})

	analyticsDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lifesync",
		Subsystem: "analytics",
		Name:      "computation_duration_seconds",
		Help:      "Time spent loading data and computing an analytics view.",
		Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"operation"})

	snapshotLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lifesync",
		Subsystem: "snapshots",
		Name:      "lookups_total",
		Help:      "Outcome snapshot cache lookups, labeled by result (hit or miss).",
	}, []string{"result"})

	snapshotJobsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lifesync",
		Subsystem: "snapshots",
		Name:      "jobs_dropped_total",
		Help:      "Snapshot refresh jobs dropped because the worker queue was full.",
	})

	logDaysSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lifesync",
		Subsystem: "logs",
		Name:      "days_saved_total",
		Help:      "Number of day completion sets replaced.",
	})
)

func init() {
	prometheus.MustRegister(analyticsComputations, analyticsDuration, snapshotLookups, snapshotJobsDropped, logDaysSaved)
}

// ObserveAnalytics records one computation of the named view that started at
// start.
func ObserveAnalytics(operation string, start time.Time) {
	analyticsComputations.WithLabelValues(operation).Inc()
	analyticsDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func RecordSnapshotHit() {
	snapshotLookups.WithLabelValues("hit").Inc()
}

func RecordSnapshotMiss() {
	snapshotLookups.WithLabelValues("miss").Inc()
}

func RecordSnapshotJobDropped() {
	snapshotJobsDropped.Inc()
}

func RecordLogDaySaved() {
	logDaysSaved.Inc()
}
