// Package metrics exports Prometheus instrumentation for searches.
// A Collector is attached to a search through the ordinary hook options,
// so the engine itself stays free of side effects.
package metrics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/statespace/frontier"
	"github.com/katalvlaran/statespace/search"
)

const namespace = "statespace"

// Outcome labels.
const (
	OutcomeFound     = "found"
	OutcomeExhausted = "exhausted"
	OutcomeAborted   = "aborted"
)

// ErrRegistererNil is returned when NewCollector receives no registerer.
var ErrRegistererNil = errors.New("metrics: registerer is nil")

// Collector owns the search metric families.
type Collector struct {
	searches *prometheus.CounterVec
	visited  *prometheus.CounterVec
	pushed   *prometheus.CounterVec
	visits   *prometheus.HistogramVec
}

// NewCollector creates the metric families and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrRegistererNil
	}
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Completed searches by frontier discipline and outcome.",
		}, []string{"discipline", "outcome"}),
		visited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_visited_total",
			Help:      "States popped from the frontier.",
		}, []string{"discipline"}),
		pushed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_pushed_total",
			Help:      "States pushed onto the frontier.",
		}, []string{"discipline"}),
		visits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_visits",
			Help:      "Visited-state count per terminated search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"discipline"}),
	}
	for _, col := range []prometheus.Collector{c.searches, c.visited, c.pushed, c.visits} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// Options returns the search hooks that feed c for a search run with
// discipline d. They occupy the OnPush, OnVisit and OnDone slots.
func Options[S any](c *Collector, d frontier.Discipline) []search.Option[S] {
	label := d.String()
	visited := c.visited.WithLabelValues(label)
	pushed := c.pushed.WithLabelValues(label)

	return []search.Option[S]{
		search.WithOnPush(func(S) { pushed.Inc() }),
		search.WithOnVisit(func(S, int) error {
			visited.Inc()
			return nil
		}),
		search.WithOnDone(func(r search.Result[S]) {
			c.searches.WithLabelValues(label, r.Outcome()).Inc()
			c.visits.WithLabelValues(label).Observe(float64(r.Visited))
		}),
	}
}

// Aborted records a search that ended with an error instead of a terminal state.
func (c *Collector) Aborted(d frontier.Discipline, visited int) {
	c.searches.WithLabelValues(d.String(), OutcomeAborted).Inc()
	c.visits.WithLabelValues(d.String()).Observe(float64(visited))
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
