package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	commandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brain_commands_total",
		Help: "Total number of processed commands by resulting action",
	}, []string{"action"})
	llmFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brain_llm_failures_total",
		Help: "Total number of generative backend failures absorbed by the orchestrator",
	})
	broadcastDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "brain_broadcast_dropped_total",
		Help: "Total number of observers evicted after a failed event delivery",
	})
	observersActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "brain_observers_active",
		Help: "Number of currently connected event observers",
	})
	overridesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "brain_admin_overrides_total",
		Help: "Total number of admin override operations by action",
	}, []string{"action"})
)

// Register registers Prometheus collectors. Call once at startup.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(commandsTotal, llmFailuresTotal, broadcastDroppedTotal, observersActive, overridesTotal)
}

// IncCommand increments the processed-commands counter for an action.
func IncCommand(action string) { commandsTotal.WithLabelValues(action).Inc() }

// IncLLMFailure increments the absorbed backend failure counter.
func IncLLMFailure() { llmFailuresTotal.Inc() }

// IncBroadcastDropped increments the evicted-observer counter.
func IncBroadcastDropped() { broadcastDroppedTotal.Inc() }

// SetObservers records the current observer count.
func SetObservers(n int) { observersActive.Set(float64(n)) }

// IncOverride increments the admin override counter for an action.
func IncOverride(action string) { overridesTotal.WithLabelValues(action).Inc() }
