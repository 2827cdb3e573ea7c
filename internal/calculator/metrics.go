package calculator

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"toolbox/pkg/metrics"
)

// Evaluation outcomes besides error codes.
const (
	outcomeOK     = "ok"
	outcomeCached = "cached"
)

type instruments struct {
	evaluations metric.Int64Counter
	duration    metric.Float64Histogram
}

func newInstruments(meter metric.Meter) (instruments, error) {
	if meter == nil {
		meter = noop.NewMeterProvider().Meter("")
	}

	evaluations, err := meter.Int64Counter(metrics.Namespace+".calculator.evaluations",
		metric.WithDescription("Number of evaluations by operation and outcome."))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create evaluations counter: %w", err)
	}

	duration, err := meter.Float64Histogram(metrics.Namespace+".calculator.evaluation.duration",
		metric.WithDescription("Duration of evaluations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return instruments{}, fmt.Errorf("could not create evaluation histogram: %w", err)
	}

	return instruments{evaluations: evaluations, duration: duration}, nil
}

func (i instruments) record(ctx context.Context, op, outcome string, started time.Time) {
	attrs := metric.WithAttributes(attribute.String("operation", op), attribute.String("outcome", outcome))
	i.evaluations.Add(ctx, 1, attrs)
	i.duration.Record(ctx, time.Since(started).Seconds(), attrs)
}
