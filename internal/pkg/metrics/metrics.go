// Package metrics exposes prometheus instrumentation for the portal core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AllocationsCreated counts allocations recorded by the allocation
	// engine and by one-off admin assignment.
	AllocationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spas_allocations_created_total",
		Help: "Total number of allocation records created.",
	})

	// AllocationRuns counts invocations of the bulk allocation engine.
	AllocationRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spas_allocation_runs_total",
		Help: "Total number of bulk allocation passes executed.",
	})

	// SnapshotWrites counts snapshot persist operations.
	SnapshotWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spas_snapshot_writes_total",
		Help: "Total number of snapshot writes to the local store.",
	})

	// SnapshotLoadFailures counts collections that failed to load from the
	// snapshot and fell back to the seed dataset.
	SnapshotLoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "spas_snapshot_load_failures_total",
		Help: "Total number of collections restored from seed after a failed snapshot load.",
	})
)
