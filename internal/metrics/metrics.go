// Package metrics holds the Prometheus instruments mabel records while it
// runs.  All collectors are registered with the global registry.  A
// one-shot CLI has no scrape endpoint, so WriteTextfile dumps the registry
// for node_exporter's textfile collector instead.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ConfigLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mabel_config_load_total",
			Help: "Configuration loads that produced a valid Config.",
		})

	ConfigLoadErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mabel_config_load_errors_total",
			Help: "Configuration loads that failed, by error kind.",
		}, []string{"kind"})

	PreflightSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mabel_preflight_seconds",
			Help:    "Duration of filesystem preflight operations.",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5},
		}, []string{"op"})
)

func init() {
	prometheus.MustRegister(
		ConfigLoadTotal,
		ConfigLoadErrorsTotal,
		PreflightSeconds,
	)
}

// WriteTextfile writes the default registry to path in the Prometheus
// text exposition format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
