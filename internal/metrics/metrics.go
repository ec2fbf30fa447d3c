// Package metrics provides Prometheus metrics for the card assistant.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the query agent.
type Metrics struct {
	AnswersTotal    *prometheus.CounterVec
	AnswerDuration  *prometheus.HistogramVec
	IngestedChunks  prometheus.Counter
	IngestFailures  prometheus.Counter
	IndexClears     prometheus.Counter
	ServerStartTime time.Time
}

// New creates and registers all metrics. Call once per process.
func New() *Metrics {
	m := &Metrics{
		ServerStartTime: time.Now(),
	}

	m.AnswersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_assistant_answers_total",
			Help: "Total answers served, by response source",
		},
		[]string{"source"},
	)

	m.AnswerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "card_assistant_answer_duration_seconds",
			Help:    "End-to-end answer latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	m.IngestedChunks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "card_assistant_ingested_chunks_total",
			Help: "Total chunks added to the document index",
		},
	)

	m.IngestFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "card_assistant_ingest_failures_total",
			Help: "Total failed document ingest attempts",
		},
	)

	m.IndexClears = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "card_assistant_index_clears_total",
			Help: "Total explicit index clears",
		},
	)

	return m
}

// RecordAnswer counts one served answer and its latency.
func (m *Metrics) RecordAnswer(source string, duration time.Duration) {
	m.AnswersTotal.WithLabelValues(source).Inc()
	m.AnswerDuration.WithLabelValues(source).Observe(duration.Seconds())
}
