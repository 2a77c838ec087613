// Package metrics records per-run counters and writes them in the node_exporter
// textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for a single run.
type Metrics struct {
	registry        *prometheus.Registry
	runsTotal       *prometheus.CounterVec
	invocations     *prometheus.CounterVec
	fetchDuration   prometheus.Gauge
	variants        *prometheus.GaugeVec
	selectedMiB     prometheus.Gauge
	lastRunUnixTime prometheus.Gauge
}

// New creates and registers the run metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	runsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ytpick_runs_total",
		Help: "Runs by terminal status",
	}, []string{"status"})
	invocations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ytpick_tool_invocations_total",
		Help: "yt-dlp invocations by operation and result",
	}, []string{"op", "result"})
	fetchDuration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ytpick_fetch_duration_seconds",
		Help: "Time spent fetching metadata in the last run",
	})
	variants := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ytpick_variants",
		Help: "Classified variants in the last lookup",
	}, []string{"kind"})
	selectedMiB := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ytpick_selected_mebibytes",
		Help: "Estimated size of the auto-picked pair",
	})
	lastRunUnixTime := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ytpick_last_run_timestamp_seconds",
		Help: "Unix time the last run finished",
	})

	registry.MustRegister(
		runsTotal,
		invocations,
		fetchDuration,
		variants,
		selectedMiB,
		lastRunUnixTime,
	)

	return &Metrics{
		registry:        registry,
		runsTotal:       runsTotal,
		invocations:     invocations,
		fetchDuration:   fetchDuration,
		variants:        variants,
		selectedMiB:     selectedMiB,
		lastRunUnixTime: lastRunUnixTime,
	}
}

// ObserveRun counts a finished run.
func (m *Metrics) ObserveRun(status string) {
	m.runsTotal.WithLabelValues(status).Inc()
	m.lastRunUnixTime.Set(float64(time.Now().Unix()))
}

// ObserveInvocation counts one tool invocation. op is "metadata" or "download".
func (m *Metrics) ObserveInvocation(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.invocations.WithLabelValues(op, result).Inc()
}

// SetFetchDuration records how long the metadata fetch took.
func (m *Metrics) SetFetchDuration(d time.Duration) {
	m.fetchDuration.Set(d.Seconds())
}

// SetVariants records the size of a classified group.
func (m *Metrics) SetVariants(kind string, n int) {
	m.variants.WithLabelValues(kind).Set(float64(n))
}

// SetSelectedMiB records the auto-pick estimate.
func (m *Metrics) SetSelectedMiB(mib float64) {
	m.selectedMiB.Set(mib)
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics to path atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Gatherer())
}
