package source

import (
	"context"

	"github.com/audit-brands/rcm/node"
)

// Snapshot is one complete read of the upstream graph.
type Snapshot struct {
	// Nodes is the flat entity list.
	Nodes []node.Node `json:"nodes" yaml:"nodes"`

	// Relationships is the flat parent/child edge list.
	Relationships []node.Relationship `json:"relationships" yaml:"relationships"`

	// Statistics carries the upstream system's precomputed counters when it
	// supplies them. The engine recomputes its own; these are advisory.
	Statistics *node.Statistics `json:"statistics,omitempty" yaml:"statistics,omitempty"`
}

// GraphSource supplies snapshots to the engine. Load is called on every
// refresh; implementations should return the current upstream state and
// treat "no data yet" as an empty snapshot, not an error.
type GraphSource interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Static is a GraphSource over fixed in-memory data.
type Static struct {
	snapshot Snapshot
}

// NewStatic creates a static source from the given snapshot.
func NewStatic(snapshot Snapshot) *Static {
	return &Static{snapshot: snapshot}
}

// Load returns the wrapped snapshot.
func (s *Static) Load(ctx context.Context) (Snapshot, error) {
	return s.snapshot, nil
}
