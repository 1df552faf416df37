// Package metrics provides Prometheus metrics for the practice backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the Prometheus registry for all englishcoach metrics.
var Registry = prometheus.NewRegistry()

var (
	// Completions counts completion calls by provider and outcome ("ok" or "error").
	Completions = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "englishcoach_completions_total",
		Help: "Completion requests sent to the remote model",
	}, []string{"provider", "outcome"})

	CompletionDuration = promauto.With(Registry).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "englishcoach_completion_duration_seconds",
		Help:    "Latency of completion requests",
		Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 40, 80},
	}, []string{"provider"})

	// ParseFailures counts rejected model responses by use case and failed stage.
	ParseFailures = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "englishcoach_parse_failures_total",
		Help: "Model responses rejected by the JSON pipeline",
	}, []string{"use_case", "stage"})

	Generations = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Name: "englishcoach_generations_total",
		Help: "Practice operations by use case and result",
	}, []string{"use_case", "result"})
)

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Handler serves the registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
