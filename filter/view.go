package filter

import (
	"fmt"

	"github.com/audit-brands/rcm/node"
)

// ViewDepth caps the node types visible in a filtered tree.
type ViewDepth string

const (
	// ViewFull keeps every node type. The zero value behaves as ViewFull.
	ViewFull ViewDepth = "full"

	// ViewProcess keeps companies and processes only.
	ViewProcess ViewDepth = "process"

	// ViewSubprocess keeps companies, processes, and subprocesses.
	ViewSubprocess ViewDepth = "subprocess"
)

// maxRanks maps each view to the deepest type rank it keeps.
var maxRanks = map[ViewDepth]int{
	ViewProcess:    node.TypeProcess.Rank(),
	ViewSubprocess: node.TypeSubprocess.Rank(),
	ViewFull:       node.TypeControl.Rank(),
}

// IsValid returns true if the view depth is a known granularity.
func (v ViewDepth) IsValid() bool {
	_, ok := maxRanks[v]
	return ok
}

// String returns the string representation of the view depth.
func (v ViewDepth) String() string {
	return string(v)
}

// Keeps reports whether a node of type t is inside the view cap.
// Unknown types are never kept by a capped view.
func (v ViewDepth) Keeps(t node.Type) bool {
	if v == "" {
		v = ViewFull
	}
	max, ok := maxRanks[v]
	if !ok {
		max = maxRanks[ViewFull]
	}
	rank := t.Rank()
	return rank >= 0 && rank <= max
}

// ParseViewDepth parses a string into a ViewDepth value.
// The empty string parses as ViewFull.
func ParseViewDepth(s string) (ViewDepth, error) {
	if s == "" {
		return ViewFull, nil
	}
	v := ViewDepth(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid view depth: %s", s)
	}
	return v, nil
}
