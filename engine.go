package rcm

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/audit-brands/rcm/effectiveness"
	"github.com/audit-brands/rcm/export"
	"github.com/audit-brands/rcm/filter"
	"github.com/audit-brands/rcm/node"
	"github.com/audit-brands/rcm/source"
	"github.com/audit-brands/rcm/stats"
	"github.com/audit-brands/rcm/tree"
)

// defaultEngine is the standard Engine implementation.
type defaultEngine struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	publisher *stats.Publisher
	source    source.GraphSource

	mu         sync.RWMutex
	snap       source.Snapshot
	roots      []*tree.Node
	statistics node.Statistics
	health     int
}

// Refresh pulls a snapshot from the configured source and rebuilds all
// derived structures.
func (e *defaultEngine) Refresh(ctx context.Context) error {
	const op = "Engine.Refresh"

	if e.source == nil {
		return newError(op, KindValidation, ErrNoSource)
	}

	if e.tracer != nil {
		var span trace.Span
		ctx, span = e.tracer.Start(ctx, "rcm.refresh")
		defer span.End()
	}

	snap, err := e.source.Load(ctx)
	if err != nil {
		e.logger.ErrorContext(ctx, "snapshot load failed", slog.Any("error", err))
		return newError(op, KindSource, fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
	}

	e.recompute(ctx, snap)
	return nil
}

// SetSnapshot injects data directly and rebuilds.
func (e *defaultEngine) SetSnapshot(ctx context.Context, snap source.Snapshot) {
	e.recompute(ctx, snap)
}

// recompute performs the full deterministic rebuild from raw input: trees,
// statistics, and the aggregate health score, in that order.
func (e *defaultEngine) recompute(ctx context.Context, snap source.Snapshot) {
	roots := tree.Build(snap.Nodes, snap.Relationships)
	statistics := stats.Compute(snap.Nodes, snap.Relationships)
	health := effectiveness.HealthScore(node.Controls(snap.Nodes))

	e.mu.Lock()
	e.snap = snap
	e.roots = roots
	e.statistics = statistics
	e.health = health
	e.mu.Unlock()

	if e.publisher != nil {
		e.publisher.Publish(ctx, statistics, health)
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.SetAttributes(
			attribute.Int("rcm.nodes", len(snap.Nodes)),
			attribute.Int("rcm.relationships", len(snap.Relationships)),
			attribute.Int("rcm.roots", len(roots)),
			attribute.Int("rcm.health", health),
		)
	}

	e.logger.InfoContext(ctx, "rcm snapshot rebuilt",
		slog.Int("nodes", len(snap.Nodes)),
		slog.Int("relationships", len(snap.Relationships)),
		slog.Int("roots", len(roots)),
		slog.Int("controls", statistics.TotalControls),
		slog.Int("health", health),
	)
}

// Tree returns the current unfiltered roots.
func (e *defaultEngine) Tree() []*tree.Node {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.roots
}

// Filtered applies a predicate set to the current trees.
func (e *defaultEngine) Filtered(f filter.Filter) ([]*tree.Node, error) {
	e.mu.RLock()
	roots := e.roots
	e.mu.RUnlock()

	filtered, err := filter.Apply(roots, f)
	if err != nil {
		return nil, newError("Engine.Filtered", KindExpression, fmt.Errorf("%w: %w", ErrInvalidFilter, err))
	}
	return filtered, nil
}

// Statistics returns the counters recomputed at the last refresh.
func (e *defaultEngine) Statistics() node.Statistics {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.statistics
}

// Health returns the aggregate control health score.
func (e *defaultEngine) Health() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.health
}

// ExportCSV renders the full, unfiltered node list.
func (e *defaultEngine) ExportCSV() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return export.CSV(e.snap.Nodes, e.snap.Relationships)
}
