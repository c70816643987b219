package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KongaYvan/Automates/pkg/domain"
)

// OutcomeAccepted labels queries that ended in a final state.
const OutcomeAccepted = "accepted"

// Metrics records engine activity on its own registry.
type Metrics struct {
	registry      *prometheus.Registry
	queries       *prometheus.CounterVec
	inputLength   prometheus.Histogram
	queryDuration prometheus.Histogram
	deterministic *prometheus.GaugeVec
	reasons       *prometheus.GaugeVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automates_queries_total",
				Help: "Total number of evaluated strings by outcome",
			},
			[]string{"automaton", "outcome"},
		),
		inputLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "automates_input_length_symbols",
				Help:    "Length of evaluated strings in symbols",
				Buckets: prometheus.ExponentialBuckets(1, 4, 7),
			},
		),
		queryDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "automates_query_duration_seconds",
				Help:    "Duration of string evaluations",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
		),
		deterministic: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "automates_deterministic",
				Help: "1 if the last verdict for the automaton was deterministic, 0 otherwise",
			},
			[]string{"automaton"},
		),
		reasons: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "automates_verdict_reasons",
				Help: "Number of determinism violations in the last verdict by kind",
			},
			[]string{"automaton", "kind"},
		),
	}
	m.registry.MustRegister(m.queries, m.inputLength, m.queryDuration, m.deterministic, m.reasons)
	return m
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnValidated: func(_ context.Context, e *domain.ValidationEvent) {
			m.ObserveVerdict(e.Automaton, e.Verdict)
		},
		OnQuery: func(_ context.Context, e *domain.QueryEvent) {
			m.queries.WithLabelValues(e.Automaton, Outcome(e.Result)).Inc()
			m.inputLength.Observe(float64(e.InputLen))
			m.queryDuration.Observe(e.Duration.Seconds())
		},
	}
}

// ObserveVerdict sets the verdict gauges for automaton.
func (m *Metrics) ObserveVerdict(automaton string, v domain.Verdict) {
	if v.Deterministic() {
		m.deterministic.WithLabelValues(automaton).Set(1)
	} else {
		m.deterministic.WithLabelValues(automaton).Set(0)
	}

	counts := map[domain.ReasonKind]int{
		domain.ReasonInitialCount:    0,
		domain.ReasonAmbiguousSymbol: 0,
		domain.ReasonAlphabetBound:   0,
	}
	for _, r := range v.Reasons {
		counts[r.Kind]++
	}
	for kind, n := range counts {
		m.reasons.WithLabelValues(automaton, string(kind)).Set(float64(n))
	}
}

// Outcome is the metric label for a result: "accepted" or the failure kind.
func Outcome(r domain.Result) string {
	if r.Accepted || r.Failure == nil {
		return OutcomeAccepted
	}
	return string(r.Failure.Kind)
}
