// Package metrics provides the Prometheus collectors for the job board.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the namespace for all job board metrics.
	Namespace = "jobboard"
)

// Result label values.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultRejected = "rejected"
)

// Metrics holds all collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	StoreOperationsTotal  *prometheus.CounterVec
	JobsInStore           prometheus.Gauge
	ExtractionsTotal      prometheus.Counter
	ApplicationsSubmitted *prometheus.CounterVec
}

// New creates and registers the collectors on reg (the default registerer
// when reg is nil).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		StoreOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "store",
				Name:      "operations_total",
				Help:      "Job store operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		JobsInStore: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "store",
			Name:      "jobs",
			Help:      "Number of job listings currently held",
		}),
		ExtractionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "extractor",
			Name:      "extractions_total",
			Help:      "Descriptions turned into job drafts",
		}),
		ApplicationsSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Subsystem: "applications",
				Name:      "submitted_total",
				Help:      "Job applications received, by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveStoreOp counts one store operation.
func (m *Metrics) ObserveStoreOp(operation, result string) {
	if m == nil {
		return
	}
	m.StoreOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetJobCount records the current collection size.
func (m *Metrics) SetJobCount(n int) {
	if m == nil {
		return
	}
	m.JobsInStore.Set(float64(n))
}

// ObserveExtraction counts one extractor run.
func (m *Metrics) ObserveExtraction() {
	if m == nil {
		return
	}
	m.ExtractionsTotal.Inc()
}

// ObserveApplication counts one application attempt by result.
func (m *Metrics) ObserveApplication(result string) {
	if m == nil {
		return
	}
	m.ApplicationsSubmitted.WithLabelValues(result).Inc()
}
