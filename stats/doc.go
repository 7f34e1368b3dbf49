// Package stats recomputes the aggregate statistics counters from the raw
// node/relationship lists on every data refresh. Counters are never derived
// from a filtered view, and orphaned nodes count like any other.
//
// Publisher optionally mirrors the counters to OpenTelemetry gauges so a
// hosting service can scrape them.
package stats
