// Package metrics exposes Prometheus instruments for playback activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsOffered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphplay_commands_offered_total",
		Help: "Playback commands offered to the queue, labelled by command.",
	}, []string{"command"})

	CommandsCoalesced = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphplay_commands_coalesced_total",
		Help: "Commands ignored because the same kind was already pending.",
	}, []string{"command"})

	CommandsExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphplay_commands_executed_total",
		Help: "Commands dequeued and executed, labelled by command.",
	}, []string{"command"})

	OpsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphplay_ops_applied_total",
		Help: "Trace ops applied to highlight state, labelled by kind and direction.",
	}, []string{"kind", "direction"})

	AlgorithmRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphplay_algorithm_runs_total",
		Help: "Algorithm executions, labelled by algorithm and status.",
	}, []string{"algorithm", "status"})

	AlgorithmDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "graphplay_algorithm_duration_ms",
		Help:    "Time to record a full trace in milliseconds.",
		Buckets: []float64{0.1, 0.5, 1, 5, 10, 25, 50, 100, 250, 1000},
	}, []string{"algorithm"})

	TraceInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "graphplay_trace_invalidations_total",
		Help: "Traces discarded because the graph changed underneath them.",
	})

	PendingCommands = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphplay_pending_commands",
		Help: "Commands currently waiting in the playback queue.",
	})

	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphplay_websocket_clients",
		Help: "Connected websocket viewers.",
	})

	LayoutEnergy = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "graphplay_layout_energy",
		Help: "Average force magnitude of the last layout step.",
	})
)
