// Package metrics holds the shared metric plumbing: histogram buckets, the
// Prometheus HTTP collector and the OpenTelemetry meter provider exported
// through Prometheus.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Namespace prefixes every metric exposed by the service.
const Namespace = "toolbox"

// NewHTTPRequestDuration creates and registers the request latency histogram
// labelled by method, route pattern and status code.
func NewHTTPRequestDuration(reg prometheus.Registerer) (*prometheus.HistogramVec, error) {
	hist := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   DefaultBuckets,
	}, []string{"method", "route", "code"})

	if err := reg.Register(hist); err != nil {
		return nil, fmt.Errorf("could not register http histogram: %w", err)
	}

	return hist, nil
}

// NewMeterProvider creates an OpenTelemetry meter provider whose instruments
// are exported through reg.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}
