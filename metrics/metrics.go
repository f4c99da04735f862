// Package metrics exposes the Prometheus surface DE/AsyncDE drivers report
// into: an evaluation counter, a cost histogram, and an incumbent-score
// gauge, all registered via promauto the way the teacher's monitoring
// package wires its counters/histograms/gauges.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements dehb.MetricsRecorder against a Prometheus registry.
type Recorder struct {
	evaluations prometheus.Counter
	cost        prometheus.Histogram
	incumbent   prometheus.Gauge
}

// New registers the DE metric family on reg (use prometheus.DefaultRegisterer
// unless the caller needs isolation, e.g. in tests).
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		evaluations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "dehb",
			Name:      "evaluations_total",
			Help:      "Total number of objective evaluations performed.",
		}),
		cost: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "dehb",
			Name:      "evaluation_cost_seconds",
			Help:      "Distribution of reported per-evaluation cost.",
			Buckets:   prometheus.DefBuckets,
		}),
		incumbent: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "dehb",
			Name:      "incumbent_score",
			Help:      "Best fitness observed so far by the running driver.",
		}),
	}
}

// ObserveEvaluation counts one objective evaluation and records its cost;
// the fitness is not recorded.
func (r *Recorder) ObserveEvaluation(fitness, cost float64) {
	r.evaluations.Inc()
	r.cost.Observe(cost)
}

// SetIncumbent publishes the driver's current best-so-far score.
func (r *Recorder) SetIncumbent(score float64) {
	r.incumbent.Set(score)
}
