package stats

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/audit-brands/rcm/node"
)

// Publisher mirrors the statistics counters to OpenTelemetry gauges.
// Instruments are created once and reused for every publish.
type Publisher struct {
	totalControls    metric.Int64Gauge
	keyControls      metric.Int64Gauge
	effective        metric.Int64Gauge
	uncoveredRisks   metric.Int64Gauge
	untestedControls metric.Int64Gauge
	health           metric.Int64Gauge
}

// NewPublisher creates the gauge instruments on the given meter.
func NewPublisher(meter metric.Meter) (*Publisher, error) {
	p := &Publisher{}
	var err error

	if p.totalControls, err = meter.Int64Gauge(
		"rcm.controls.total",
		metric.WithDescription("Number of control nodes in the current snapshot"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("create total controls gauge: %w", err)
	}

	if p.keyControls, err = meter.Int64Gauge(
		"rcm.controls.key",
		metric.WithDescription("Number of controls flagged as key controls"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("create key controls gauge: %w", err)
	}

	if p.effective, err = meter.Int64Gauge(
		"rcm.controls.effective",
		metric.WithDescription("Number of controls at canonical level effective"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("create effective controls gauge: %w", err)
	}

	if p.uncoveredRisks, err = meter.Int64Gauge(
		"rcm.risks.uncovered",
		metric.WithDescription("Number of risks with no control children"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("create uncovered risks gauge: %w", err)
	}

	if p.untestedControls, err = meter.Int64Gauge(
		"rcm.controls.untested",
		metric.WithDescription("Number of controls with no testing history"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("create untested controls gauge: %w", err)
	}

	if p.health, err = meter.Int64Gauge(
		"rcm.health.score",
		metric.WithDescription("Aggregate control health score, 0-100"),
		metric.WithUnit("1"),
	); err != nil {
		return nil, fmt.Errorf("create health gauge: %w", err)
	}

	return p, nil
}

// Publish records the current counters and health score.
func (p *Publisher) Publish(ctx context.Context, s node.Statistics, healthScore int) {
	p.totalControls.Record(ctx, int64(s.TotalControls))
	p.keyControls.Record(ctx, int64(s.KeyControls))
	p.effective.Record(ctx, int64(s.EffectiveControls))
	p.uncoveredRisks.Record(ctx, int64(s.RisksWithoutControls))
	p.untestedControls.Record(ctx, int64(s.ControlsWithoutTesting))
	p.health.Record(ctx, int64(healthScore))
}
