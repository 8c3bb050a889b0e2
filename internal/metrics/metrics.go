// Package metrics exports matcher activity as Prometheus metrics.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/coregx/strmatch/duel"
)

const namespace = "strmatch"

// Collector records search and stage metrics. It implements duel.Observer.
type Collector struct {
	searches      *prometheus.CounterVec
	matches       *prometheus.CounterVec
	searchSeconds *prometheus.HistogramVec
	bytes         prometheus.Counter

	stages       *prometheus.CounterVec
	stageSeconds *prometheus.HistogramVec
	duels        prometheus.Counter
	undecided    prometheus.Counter
	skipped      prometheus.Counter
	extensions   prometheus.Counter
	eliminated   prometheus.Counter
}

var _ duel.Observer = (*Collector)(nil)

// New registers the collector's metrics with reg.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Searches run, by algorithm.",
		}, []string{"algorithm"}),
		matches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Occurrences reported, by algorithm.",
		}, []string{"algorithm"}),
		searchSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent in a single search, by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
		bytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scanned_bytes_total",
			Help:      "Text bytes searched.",
		}),

		stages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gsv",
			Name:      "stages_total",
			Help:      "Dueling stages completed, by case.",
		}, []string{"case"}),
		stageSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gsv",
			Name:      "stage_duration_seconds",
			Help:      "Time spent in a single stage, by case.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"case"}),
		duels: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gsv",
			Name:      "duels_total",
			Help:      "Duels fought.",
		}),
		undecided: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gsv",
			Name:      "undecided_duels_total",
			Help:      "Duels in which both candidates agreed with the text.",
		}),
		skipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gsv",
			Name:      "skipped_duels_total",
			Help:      "Close candidate pairs without a usable witness.",
		}),
		extensions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gsv",
			Name:      "extensions_total",
			Help:      "Extension tests run.",
		}),
		eliminated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gsv",
			Name:      "eliminated_candidates_total",
			Help:      "Candidates removed by stages.",
		}),
	}
}

// ObserveStage records one completed stage.
func (c *Collector) ObserveStage(r duel.StageReport) {
	label := r.Case.String()
	c.stages.WithLabelValues(label).Inc()
	c.stageSeconds.WithLabelValues(label).Observe(r.Duration.Seconds())
	c.duels.Add(float64(r.Duels))
	c.undecided.Add(float64(r.Undecided))
	c.skipped.Add(float64(r.Skipped))
	c.extensions.Add(float64(r.Extensions))
	c.eliminated.Add(float64(r.Eliminated()))
}

// ObserveSearch records one search over n text bytes.
func (c *Collector) ObserveSearch(algorithm string, n, matches int, elapsed time.Duration) {
	c.searches.WithLabelValues(algorithm).Inc()
	c.matches.WithLabelValues(algorithm).Add(float64(matches))
	c.searchSeconds.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	c.bytes.Add(float64(n))
}

// WriteText writes every metric gathered from g in the Prometheus text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
