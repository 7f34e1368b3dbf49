package rcm

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/audit-brands/rcm/source"
)

// Option configures the Engine.
type Option func(*engineConfig)

// engineConfig holds configuration for an Engine instance.
type engineConfig struct {
	logger *slog.Logger
	tracer trace.Tracer
	meter  metric.Meter
	source source.GraphSource
	snap   *source.Snapshot
}

// WithLogger sets a custom logger for the engine.
// If not provided, a default JSON logger is created.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer. Each Refresh runs inside a span
// when a tracer is configured.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *engineConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter. When configured, the engine
// publishes the statistics counters and health score as gauges on every
// recomputation.
func WithMeter(meter metric.Meter) Option {
	return func(c *engineConfig) {
		c.meter = meter
	}
}

// WithSource sets the graph source the engine pulls snapshots from on
// Refresh.
func WithSource(src source.GraphSource) Option {
	return func(c *engineConfig) {
		c.source = src
	}
}

// WithSnapshot seeds the engine with initial data, equivalent to calling
// SetSnapshot after construction. Useful when the caller pushes data instead
// of configuring a source.
func WithSnapshot(snap source.Snapshot) Option {
	return func(c *engineConfig) {
		c.snap = &snap
	}
}
