package node

import "fmt"

// Relationship is a directed parent/child edge: To is a child of From.
// A parent may have any number of children; a child should have at most one
// parent edge for the tree to be well-formed, but the engine tolerates
// violations (see the tree package).
type Relationship struct {
	// From is the parent node ID.
	From string `json:"from" yaml:"from"`

	// To is the child node ID.
	To string `json:"to" yaml:"to"`
}

// NewRelationship creates a parent/child edge from the given node IDs.
func NewRelationship(from, to string) Relationship {
	return Relationship{From: from, To: to}
}

// Validate checks that both endpoints are populated.
func (r Relationship) Validate() error {
	if r.From == "" {
		return fmt.Errorf("relationship From cannot be empty")
	}
	if r.To == "" {
		return fmt.Errorf("relationship To cannot be empty")
	}
	return nil
}
