package importer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics holds the import collectors.
type Metrics struct {
	runs     *prometheus.CounterVec
	rows     prometheus.Gauge
	duration prometheus.Histogram
}

// NewMetrics registers the import collectors with reg. A nil reg creates
// unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "recipe_import_runs_total",
				Help: "Total number of recipe imports by outcome",
			},
			[]string{"outcome"},
		),
		rows: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "recipe_import_rows",
				Help: "Rows written by the last successful import",
			},
		),
		duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "recipe_import_duration_seconds",
				Help:    "Duration of recipe imports in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
		),
	}
}

func (m *Metrics) observe(res Result, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(res.Duration.Seconds())
	if err != nil {
		m.runs.WithLabelValues(outcomeFailure).Inc()
		return
	}
	m.runs.WithLabelValues(outcomeSuccess).Inc()
	m.rows.Set(float64(res.Inserted))
}
