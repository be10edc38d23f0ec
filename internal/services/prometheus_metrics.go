package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	expensesCreated      *prometheus.CounterVec
	expensesClassified   *prometheus.CounterVec
	expensesDeleted      prometheus.Counter
	insightsGenerated    *prometheus.CounterVec
	achievementUnlocks   *prometheus.CounterVec
	evaluationDuration   prometheus.Histogram
	expenseAmount        prometheus.Histogram
	trackedExpensesGauge prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		expensesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_created_total",
				Help: "Total number of expenses created",
			},
			[]string{"category"},
		),
		expensesClassified: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_classified_total",
				Help: "Total number of expenses classified as worth or waste",
			},
			[]string{"type"},
		),
		expensesDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "expenses_deleted_total",
				Help: "Total number of expenses deleted",
			},
		),
		insightsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "insights_generated_total",
				Help: "Total number of insight evaluations by selected rule",
			},
			[]string{"rule"},
		),
		achievementUnlocks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "achievements_unlocked_total",
				Help: "Total number of achievements unlocked",
			},
			[]string{"achievement_id"},
		),
		evaluationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "insight_evaluation_duration_milliseconds",
				Help:    "Analytics engine evaluation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		expenseAmount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "expense_amount",
				Help:    "Expense amount in base currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		trackedExpensesGauge: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "tracked_expenses_total",
				Help: "Current number of tracked expenses",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "expense_created":
		m.expensesCreated.WithLabelValues(tags["category"]).Inc()
	case "expense_classified":
		if expenseType := tags["type"]; expenseType != "" {
			m.expensesClassified.WithLabelValues(expenseType).Inc()
		}
	case "expense_deleted":
		m.expensesDeleted.Inc()
	case "insight_generated":
		if rule := tags["rule"]; rule != "" {
			m.insightsGenerated.WithLabelValues(rule).Inc()
		}
	case "achievement_unlocked":
		if id := tags["achievement_id"]; id != "" {
			m.achievementUnlocks.WithLabelValues(id).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "insight_evaluation":
		m.evaluationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "expense_amount":
		m.expenseAmount.Observe(value)
	case "tracked_expenses":
		m.trackedExpensesGauge.Set(value)
	}
}
