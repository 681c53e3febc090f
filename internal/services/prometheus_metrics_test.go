package services

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.IncrementCounter(MetricRollup, map[string]string{"status": "completed"})
	m.IncrementCounter(MetricRollup, map[string]string{"status": "completed"})
	m.IncrementCounter(MetricCurrencyConversion, map[string]string{"status": "missing", "from": "EUR", "to": "USD"})
	m.IncrementCounter(MetricBudgetChanged, map[string]string{})
	m.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rollupsTotal.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conversionsTotal.WithLabelValues("missing", "EUR", "USD")))
	assert.Equal(t, 0, testutil.CollectAndCount(m.budgetChangesTotal))
}

func TestPrometheusMetrics_Gauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.RecordGauge(MetricUnconvertedTransactions, 4, nil)
	m.RecordGauge(MetricCircuitBreakerState, float64(StateOpen), map[string]string{"service": rateProviderService})
	m.RecordProcessingTime(MetricRollup, 15*time.Millisecond)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.unconvertedLastRollup))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.circuitBreakerState.WithLabelValues(rateProviderService)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rollupDuration))
}
