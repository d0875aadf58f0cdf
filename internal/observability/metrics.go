// Package observability wires Prometheus metrics for hamkit.
package observability

import (
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/observability/metrics"
)

// Metrics holds all the metric collectors for the application.
type Metrics struct {
	registry *prometheus.Registry
	Resolver *metrics.ResolverMetrics
	HTTP     *metrics.HTTPMetrics
}

// NewMetrics creates a registry with the resolver and HTTP collectors plus
// the Go runtime and process collectors.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	resolverMetrics, err := metrics.NewResolverMetrics(registry)
	if err != nil {
		return nil, errors.New(err).
			Component("observability").
			Category(errors.CategoryConfiguration).
			Build()
	}

	httpMetrics, err := metrics.NewHTTPMetrics(registry)
	if err != nil {
		return nil, errors.New(err).
			Component("observability").
			Category(errors.CategoryConfiguration).
			Build()
	}

	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, errors.New(err).Component("observability").Build()
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, errors.New(err).Component("observability").Build()
	}

	return &Metrics{registry: registry, Resolver: resolverMetrics, HTTP: httpMetrics}, nil
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      log.New(os.Stderr, "metrics handler: ", log.LstdFlags),
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}

// CountErrors feeds every enhanced error into the errors_total counter.
func (m *Metrics) CountErrors() {
	errors.AddErrorHook(func(ee *errors.EnhancedError) {
		m.Resolver.RecordError(ee.GetComponent(), ee.GetCategory())
	})
}
