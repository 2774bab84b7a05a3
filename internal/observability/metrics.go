package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// reference-data caches and the validation layer.
type Metrics struct {
	// Dataset load metrics.
	DatasetLoads        *prometheus.CounterVec   // labels: dataset={postal,municipality,street}, outcome={success,error}
	DatasetRecords      *prometheus.GaugeVec     // labels: dataset
	DatasetLoadDuration *prometheus.HistogramVec // labels: dataset

	// Opendata provider metrics.
	FetchRequests  *prometheus.CounterVec // labels: dataset, outcome={success,error}
	SnapshotReads  *prometheus.CounterVec // labels: dataset, result={hit,stale,miss}
	SnapshotWrites *prometheus.CounterVec // labels: dataset, outcome={success,error}

	// Validation metrics.
	WarningsEmitted *prometheus.CounterVec // labels: kind, severity
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetLoads,
		m.DatasetRecords,
		m.DatasetLoadDuration,
		m.FetchRequests,
		m.SnapshotReads,
		m.SnapshotWrites,
		m.WarningsEmitted,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swissref",
			Name:      "dataset_loads_total",
			Help:      "Reference dataset load attempts by dataset and outcome.",
		}, []string{"dataset", "outcome"}),
		DatasetRecords: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "swissref",
			Name:      "dataset_records",
			Help:      "Number of records held in RAM per reference dataset.",
		}, []string{"dataset"}),
		DatasetLoadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "swissref",
			Name:      "dataset_load_duration_seconds",
			Help:      "Duration of a full dataset fetch-and-index cycle.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"dataset"}),
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swissref",
			Name:      "fetch_requests_total",
			Help:      "Upstream dataset fetch requests by dataset and outcome.",
		}, []string{"dataset", "outcome"}),
		SnapshotReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swissref",
			Name:      "snapshot_reads_total",
			Help:      "Last-known-good snapshot reads by dataset and result.",
		}, []string{"dataset", "result"}),
		SnapshotWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swissref",
			Name:      "snapshot_writes_total",
			Help:      "Snapshot writes after successful fetches by dataset and outcome.",
		}, []string{"dataset", "outcome"}),
		WarningsEmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "swissref",
			Name:      "warnings_emitted_total",
			Help:      "Validation warnings appended to contexts by kind and severity.",
		}, []string{"kind", "severity"}),
	}
}
