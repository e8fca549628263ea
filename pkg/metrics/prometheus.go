package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	runsTotal     *prometheus.CounterVec
	adapterErrors *prometheus.CounterVec
	datasetSize   *prometheus.GaugeVec
	runDuration   prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		runsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biopulse_collection_runs_total",
				Help: "Total number of pipeline runs by terminal status",
			},
			[]string{"status"},
		),
		adapterErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "biopulse_adapter_errors_total",
				Help: "Total number of degraded adapter fetches",
			},
			[]string{"adapter"},
		),
		datasetSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "biopulse_dataset_records",
				Help: "Record count per dataset in the current snapshot",
			},
			[]string{"dataset"},
		),
		runDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "biopulse_collection_duration_seconds",
				Help:    "Duration of a full pipeline run in seconds",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		),
	}
}

// RecordRun records one finished pipeline run.
func (r *Recorder) RecordRun(status string, seconds float64) {
	r.runsTotal.WithLabelValues(status).Inc()
	r.runDuration.Observe(seconds)
}

// RecordAdapterError records one degraded adapter fetch.
func (r *Recorder) RecordAdapterError(adapter string) {
	r.adapterErrors.WithLabelValues(adapter).Inc()
}

// RecordDatasetSize records the record count of one dataset.
func (r *Recorder) RecordDatasetSize(dataset string, n int) {
	r.datasetSize.WithLabelValues(dataset).Set(float64(n))
}
