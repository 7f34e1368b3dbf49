package rcm

import (
	"context"
	"log/slog"
	"os"

	"github.com/audit-brands/rcm/filter"
	"github.com/audit-brands/rcm/node"
	"github.com/audit-brands/rcm/source"
	"github.com/audit-brands/rcm/stats"
	"github.com/audit-brands/rcm/tree"
)

// Engine is the facade over the RCM aggregation pipeline. It caches the most
// recent snapshot and its derived structures, and recomputes everything from
// the raw input on each data change.
//
// Engine methods are safe for concurrent use. The returned trees are shared,
// rebuilt-on-refresh structures; callers must treat them as read-only.
type Engine interface {
	// Refresh pulls a snapshot from the configured graph source and rebuilds
	// the trees, statistics, and health score.
	Refresh(ctx context.Context) error

	// SetSnapshot injects data directly, bypassing the source, and rebuilds.
	SetSnapshot(ctx context.Context, snap source.Snapshot)

	// Tree returns the current unfiltered roots.
	Tree() []*tree.Node

	// Filtered applies a predicate set to the current trees and returns the
	// surviving copies. The cached trees are never mutated.
	Filtered(f filter.Filter) ([]*tree.Node, error)

	// Statistics returns the counters recomputed at the last refresh.
	Statistics() node.Statistics

	// Health returns the aggregate control health score, 0-100.
	Health() int

	// ExportCSV renders the full, unfiltered node list as CSV. Export
	// ignores any filtering by design: it is a full-data dump.
	ExportCSV() string
}

// New creates an Engine with the provided options.
//
// Example:
//
//	engine, err := rcm.New(
//		rcm.WithSource(source.NewFile("/data/rcm.json")),
//		rcm.WithLogger(logger),
//	)
func New(opts ...Option) (Engine, error) {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	e := &defaultEngine{
		logger: cfg.logger,
		tracer: cfg.tracer,
		source: cfg.source,
	}

	if cfg.meter != nil {
		publisher, err := stats.NewPublisher(cfg.meter)
		if err != nil {
			return nil, newError("New", KindInternal, err)
		}
		e.publisher = publisher
	}

	if cfg.snap != nil {
		e.SetSnapshot(context.Background(), *cfg.snap)
	}

	return e, nil
}
