package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"colloquy-hq/colloquy/pkg/analysis"
)

// Collector tracks analysis run metrics for Prometheus scraping.
type Collector struct {
	registry *prometheus.Registry

	runsTotal            prometheus.Counter
	runDuration          prometheus.Histogram
	componentUnavailable *prometheus.CounterVec
	messagesAnalyzed     prometheus.Counter
}

// NewCollector creates a collector with its own registry under the given
// metric namespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = "colloquy"
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total number of analysis runs.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of analysis runs.",
			Buckets:   prometheus.DefBuckets,
		}),
		componentUnavailable: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "component_unavailable_total",
			Help:      "Analysis runs in which a component produced no output.",
		}, []string{"component"}),
		messagesAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_analyzed_total",
			Help:      "Total number of conversation messages analyzed.",
		}),
	}

	c.registry.MustRegister(
		c.runsTotal,
		c.runDuration,
		c.componentUnavailable,
		c.messagesAnalyzed,
	)
	return c
}

// ObserveRun records one completed analysis run.
func (c *Collector) ObserveRun(res *analysis.Result, duration time.Duration) {
	c.runsTotal.Inc()
	c.runDuration.Observe(duration.Seconds())
	c.messagesAnalyzed.Add(float64(res.Stats.TotalMessages))

	for name, status := range res.Components {
		if !status.Available {
			c.componentUnavailable.WithLabelValues(name).Inc()
		}
	}
}

// Handler returns the HTTP handler exposing the collector's metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
