package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/justsurfingit/job-board/internal/metrics"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveStoreOp("add", metrics.ResultOK)
	m.ObserveStoreOp("add", metrics.ResultOK)
	m.ObserveStoreOp("delete", metrics.ResultNotFound)
	m.SetJobCount(9)
	m.ObserveExtraction()
	m.ObserveApplication(metrics.ResultOK)
	m.ObserveApplication(metrics.ResultRejected)

	assert.InDelta(t, 2, testutil.ToFloat64(m.StoreOperationsTotal.WithLabelValues("add", metrics.ResultOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.StoreOperationsTotal.WithLabelValues("delete", metrics.ResultNotFound)), 0)
	assert.InDelta(t, 9, testutil.ToFloat64(m.JobsInStore), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ExtractionsTotal), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ApplicationsSubmitted.WithLabelValues(metrics.ResultOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ApplicationsSubmitted.WithLabelValues(metrics.ResultRejected)), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveStoreOp("add", metrics.ResultOK)
		m.SetJobCount(1)
		m.ObserveExtraction()
		m.ObserveApplication(metrics.ResultOK)
	})
}
