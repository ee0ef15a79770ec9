package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts resolution attempts per tier and the source of every answer.
type Metrics struct {
	TierOutcomes *prometheus.CounterVec
	TierDuration *prometheus.HistogramVec
	Answers      *prometheus.CounterVec
}

// New registers the collectors with reg. Use a fresh registry per test.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		TierOutcomes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "answer_tier_outcomes_total",
				Help: "Resolution attempts per tier and outcome",
			},
			[]string{"tier", "outcome"},
		),
		TierDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "answer_tier_duration_seconds",
				Help:    "Duration of one resolution attempt in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tier"},
		),
		Answers: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "answers_total",
				Help: "Answer records produced, by the source that filled the snippet",
			},
			[]string{"source"},
		),
	}
}

func (m *Metrics) ObserveTier(tier, outcome string, d time.Duration) {
	m.TierOutcomes.WithLabelValues(tier, outcome).Inc()
	m.TierDuration.WithLabelValues(tier).Observe(d.Seconds())
}

func (m *Metrics) ObserveAnswer(source string) {
	m.Answers.WithLabelValues(source).Inc()
}
