package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Conversion results.
const (
	ResultOK        = "ok"
	ResultNonFinite = "non_finite"
)

// Argument error kinds.
const (
	KindUsage = "usage"
	KindParse = "parse"
)

// Collector holds the metrics recorded by one run of the converter.
type Collector struct {
	gatherer prometheus.Gatherer

	Conversions        *prometheus.CounterVec
	ArgumentErrors     *prometheus.CounterVec
	ConversionDuration prometheus.Histogram
}

// NewCollector registers the converter metrics against reg. A nil reg uses
// the global Prometheus registry.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{
		gatherer: gatherer,
		Conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sez2ecef_conversions_total",
				Help: "Total number of SEZ to ECEF conversions, labeled by result.",
			},
			[]string{"result"},
		),
		ArgumentErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sez2ecef_argument_errors_total",
				Help: "Total number of rejected command lines, labeled by error kind.",
			},
			[]string{"kind"},
		),
		ConversionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sez2ecef_conversion_duration_seconds",
				Help:    "SEZ to ECEF conversion duration in seconds.",
				Buckets: prometheus.ExponentialBuckets(1e-7, 10, 6),
			},
		),
	}

	for _, m := range []prometheus.Collector{c.Conversions, c.ArgumentErrors, c.ConversionDuration} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	// Pre-create the label sets so an exported file always lists them.
	c.Conversions.WithLabelValues(ResultOK)
	c.Conversions.WithLabelValues(ResultNonFinite)
	c.ArgumentErrors.WithLabelValues(KindUsage)
	c.ArgumentErrors.WithLabelValues(KindParse)

	return c, nil
}

// ObserveConversion records one conversion and how long it took.
func (c *Collector) ObserveConversion(result string, d time.Duration) {
	if c == nil {
		return
	}
	c.Conversions.WithLabelValues(result).Inc()
	c.ConversionDuration.Observe(d.Seconds())
}

// ObserveArgumentError records a rejected command line.
func (c *Collector) ObserveArgumentError(kind string) {
	if c == nil {
		return
	}
	c.ArgumentErrors.WithLabelValues(kind).Inc()
}

// WriteTextfile writes every gathered metric to path in the Prometheus text
// exposition format, for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.gatherer); err != nil {
		return fmt.Errorf("write metrics to %s: %w", path, err)
	}
	return nil
}
