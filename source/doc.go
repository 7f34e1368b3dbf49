// Package source defines the graph-source contract the engine consumes and
// the adapters that satisfy it.
//
// A GraphSource supplies a Snapshot: the flat node and relationship lists,
// plus the upstream system's own precomputed statistics when it has them.
// The engine treats a missing or empty snapshot as an empty graph rather
// than an error, and always recomputes statistics itself; the upstream
// counters are advisory.
//
// Three adapters ship with the module: Static wraps in-memory data, File
// loads JSON or YAML documents, and Redis reads a JSON snapshot stored at a
// key by an upstream publisher.
package source
