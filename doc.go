// Package rcm implements the Risk-Control Matrix aggregation engine: a
// synchronous, side-effect-free pipeline that turns a flat graph of typed
// compliance entities into navigable, filterable hierarchies with derived
// effectiveness scoring.
//
// # Pipeline
//
// Data flows strictly downward; every stage produces a new structure and
// never mutates its input:
//
//	GraphSource -> TreeBuilder -> EffectivenessScorer -> FilterEngine -> Presentation/Exporter
//
//   - source: the GraphSource contract and its adapters (static, file, redis)
//   - tree: flat nodes + relationships into rooted trees
//   - effectiveness: canonical levels, per-control scores, aggregate health
//   - filter: composable structure-preserving predicates
//   - export: the flat CSV dump
//   - stats: aggregate counters over the full node set
//   - viewstate: the presentation layer's expand/collapse set
//
// # Engine
//
// The Engine facade wires the stages together around a cached snapshot:
//
//	engine, err := rcm.New(
//		rcm.WithSource(source.NewFile("rcm.yaml")),
//		rcm.WithLogger(logger),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := engine.Refresh(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	visible, err := engine.Filtered(filter.Filter{Search: "payroll"})
//	csvDoc := engine.ExportCSV()
//
// Each recomputation is a full, deterministic rebuild from the raw input:
// there is no incremental update path, no persistence, and no background
// work. The transforms themselves are pure functions, so the packages below
// the facade are safe to use directly and concurrently on independent data.
package rcm
