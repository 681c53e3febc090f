package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics.
const (
	MetricRollup                  = "budget.rollup"
	MetricUnconvertedTransactions = "budget.rollup.unconverted"
	MetricCurrencyConversion      = "currency.conversion"
	MetricCircuitBreakerState     = "circuit_breaker.state"
	MetricBudgetReorder           = "budget.reorder"
	MetricBudgetChanged           = "budget.changed"
	MetricSyncTriggered           = "budget.sync"
	MetricExchangeRateUpdated     = "exchange_rate.updated"
)

type PrometheusMetrics struct {
	rollupsTotal          *prometheus.CounterVec
	rollupDuration        prometheus.Histogram
	unconvertedLastRollup prometheus.Gauge
	conversionsTotal      *prometheus.CounterVec
	circuitBreakerState   *prometheus.GaugeVec
	reordersTotal         *prometheus.CounterVec
	budgetChangesTotal    *prometheus.CounterVec
	syncTriggersTotal     *prometheus.CounterVec
	exchangeRateUpdates   prometheus.Counter
}

// NewPrometheusMetrics registers the budget engine metrics with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		rollupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_rollups_total",
				Help: "Total number of budget rollups by outcome",
			},
			[]string{"status"},
		),
		rollupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_rollup_duration_milliseconds",
				Help:    "Budget rollup duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		unconvertedLastRollup: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "budget_rollup_unconverted_transactions",
				Help: "Expenses left out of the last rollup because no exchange rate was available",
			},
		),
		conversionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversions_total",
				Help: "Total number of currency conversions by outcome",
			},
			[]string{"status", "from", "to"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		reordersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_reorders_total",
				Help: "Total number of budget reorders by outcome",
			},
			[]string{"status"},
		),
		budgetChangesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_changes_total",
				Help: "Total number of budget create, update and delete operations",
			},
			[]string{"action"},
		),
		syncTriggersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_sync_triggers_total",
				Help: "Total number of budget sync requests by outcome",
			},
			[]string{"status"},
		),
		exchangeRateUpdates: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "exchange_rate_updates_total",
				Help: "Total number of stored exchange rate updates",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricRollup:
		m.rollupsTotal.WithLabelValues(status).Inc()
	case MetricCurrencyConversion:
		m.conversionsTotal.WithLabelValues(status, tags["from"], tags["to"]).Inc()
	case MetricBudgetReorder:
		m.reordersTotal.WithLabelValues(status).Inc()
	case MetricBudgetChanged:
		if action := tags["action"]; action != "" {
			m.budgetChangesTotal.WithLabelValues(action).Inc()
		}
	case MetricSyncTriggered:
		m.syncTriggersTotal.WithLabelValues(status).Inc()
	case MetricExchangeRateUpdated:
		m.exchangeRateUpdates.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRollup:
		m.rollupDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricUnconvertedTransactions:
		m.unconvertedLastRollup.Set(value)
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
