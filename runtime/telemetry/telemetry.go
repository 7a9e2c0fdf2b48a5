// Package telemetry carries the logging, metrics and tracing hooks used by the
// bean generator and its CLI. Implementations delegate to Clue and
// OpenTelemetry, or discard everything.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Instrument names recorded by the generator.
const (
	// MetricUnits counts processed source units, tagged by outcome.
	MetricUnits = "beangen.units"
	// MetricProperties records the number of properties per generated bean.
	MetricProperties = "beangen.properties"
	// MetricDuration records the generation time of one unit.
	MetricDuration = "beangen.duration"
)

type (
	// Logger emits structured log messages as alternating key-value pairs.
	Logger interface {
		Debug(ctx context.Context, msg string, keyvals ...any)
		Info(ctx context.Context, msg string, keyvals ...any)
		Warn(ctx context.Context, msg string, keyvals ...any)
		Error(ctx context.Context, msg string, keyvals ...any)
	}

	// Metrics records counters, timers and gauges. Tags alternate keys and
	// values.
	Metrics interface {
		IncCounter(name string, value float64, tags ...string)
		RecordTimer(name string, duration time.Duration, tags ...string)
		RecordGauge(name string, value float64, tags ...string)
	}

	// Tracer starts spans.
	Tracer interface {
		Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, Span)
		Span(ctx context.Context) Span
	}

	// Span is an in-flight tracing span.
	//
	//	ctx, span := tracer.Start(ctx, "beangen.generate")
	//	defer span.End()
	//	span.SetStatus(codes.Ok, "generated")
	Span interface {
		End(opts ...trace.SpanEndOption)
		AddEvent(name string, attrs ...any)
		SetStatus(code codes.Code, description string)
		RecordError(err error, opts ...trace.EventOption)
	}

	// Bundle groups the three hooks. Nil members are replaced by no-op
	// implementations in WithDefaults.
	Bundle struct {
		Logger  Logger
		Metrics Metrics
		Tracer  Tracer
	}
)

// NewClueBundle returns a Bundle backed by Clue and the global OpenTelemetry
// providers.
func NewClueBundle() Bundle {
	return Bundle{Logger: NewClueLogger(), Metrics: NewClueMetrics(), Tracer: NewClueTracer()}
}

// WithDefaults returns b with nil members replaced by no-op implementations.
func (b Bundle) WithDefaults() Bundle {
	if b.Logger == nil {
		b.Logger = NewNoopLogger()
	}
	if b.Metrics == nil {
		b.Metrics = NewNoopMetrics()
	}
	if b.Tracer == nil {
		b.Tracer = NewNoopTracer()
	}
	return b
}
