package node

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Lifecycle status values carried in the Status field. The set is open:
// upstream systems may introduce their own statuses, and the engine only
// assigns meaning to StatusRetired (health-score penalty).
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusRetired  = "Retired"
)

// Node is one entity in the compliance hierarchy.
type Node struct {
	// ID is the unique node identifier, stable across rebuilds.
	ID string `json:"id" yaml:"id"`

	// Type fixes the node's position in the hierarchy.
	Type Type `json:"type" yaml:"type"`

	// Name is the display label.
	Name string `json:"name" yaml:"name"`

	// Parent is an optional parent id reference. It feeds the flat CSV
	// export only; tree construction reads relationships instead.
	Parent string `json:"parent,omitempty" yaml:"parent,omitempty"`

	// Status is an optional lifecycle flag.
	Status string `json:"status,omitempty" yaml:"status,omitempty"`

	// Effectiveness is the raw effectiveness signal, present only on
	// control nodes. Unrecognized values canonicalize to not-tested.
	Effectiveness string `json:"effectiveness,omitempty" yaml:"effectiveness,omitempty"`

	// Metadata holds type-specific attributes.
	Metadata Metadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// New creates a Node of the given type with a generated UUID.
// Callers integrating upstream data should set IDs explicitly with WithID.
func New(nodeType Type, name string) *Node {
	return &Node{
		ID:   uuid.NewString(),
		Type: nodeType,
		Name: name,
	}
}

// WithID sets the node ID and returns the node for method chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithParent sets the parent id hint and returns the node for chaining.
func (n *Node) WithParent(parentID string) *Node {
	n.Parent = parentID
	return n
}

// WithStatus sets the lifecycle status and returns the node for chaining.
func (n *Node) WithStatus(status string) *Node {
	n.Status = status
	return n
}

// WithEffectiveness sets the raw effectiveness signal and returns the node
// for chaining.
func (n *Node) WithEffectiveness(raw string) *Node {
	n.Effectiveness = raw
	return n
}

// WithMeta sets a single metadata value and returns the node for chaining.
// The Metadata map is initialized if nil.
func (n *Node) WithMeta(key string, value any) *Node {
	if n.Metadata == nil {
		n.Metadata = make(Metadata)
	}
	n.Metadata[key] = value
	return n
}

// IsControl reports whether the node is a control.
func (n *Node) IsControl() bool {
	return n.Type == TypeControl
}

// IsRisk reports whether the node is a risk.
func (n *Node) IsRisk() bool {
	return n.Type == TypeRisk
}

// KeyControl reports whether the node carries the keyControl metadata flag.
func (n *Node) KeyControl() bool {
	return n.Metadata.Bool(MetaKeyControl)
}

// Validate checks that the node has an ID, a valid type, and a name.
func (n *Node) Validate() error {
	if n.ID == "" {
		return errors.New("node id is required")
	}
	if !n.Type.IsValid() {
		return fmt.Errorf("invalid node type: %q", n.Type)
	}
	if n.Name == "" {
		return errors.New("node name is required")
	}
	return nil
}

// Controls returns the control nodes from the given set, preserving order.
func Controls(nodes []Node) []Node {
	var controls []Node
	for _, n := range nodes {
		if n.IsControl() {
			controls = append(controls, n)
		}
	}
	return controls
}
