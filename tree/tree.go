package tree

import "github.com/audit-brands/rcm/node"

// Node is an entity plus its ordered child subtrees. Trees are rebuilt, never
// mutated in place, on every recomputation; consumers treat them as
// read-only values.
type Node struct {
	node.Node `yaml:",inline"`

	// Children are the node's child subtrees in relationship input order.
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// HasChildOfType reports whether the node has at least one direct child of
// the given type.
func (n *Node) HasChildOfType(t node.Type) bool {
	for _, c := range n.Children {
		if c.Type == t {
			return true
		}
	}
	return false
}

// Build converts flat nodes and relationships into rooted trees.
//
// Pass one indexes every node by ID, wrapping it in a tree Node; a duplicate
// ID keeps the first occurrence. Pass two walks relationships and appends
// each resolvable child to its parent's Children; edges with a missing
// endpoint are dropped without error. Roots are all company nodes in input
// order. Nodes unreachable from a root stay out of the returned forest but
// remain visible to the flat statistics and export paths.
func Build(nodes []node.Node, relationships []node.Relationship) []*Node {
	index := make(map[string]*Node, len(nodes))
	ordered := make([]*Node, 0, len(nodes))

	for _, n := range nodes {
		if _, exists := index[n.ID]; exists {
			continue
		}
		tn := &Node{Node: n}
		index[n.ID] = tn
		ordered = append(ordered, tn)
	}

	for _, rel := range relationships {
		parent, okFrom := index[rel.From]
		child, okTo := index[rel.To]
		if !okFrom || !okTo {
			continue
		}
		parent.Children = append(parent.Children, child)
	}

	var roots []*Node
	for _, tn := range ordered {
		if tn.Type == node.TypeCompany {
			roots = append(roots, tn)
		}
	}
	return roots
}

// Walk visits every node reachable from roots in depth-first pre-order,
// calling fn with the node and its depth. Returning false from fn prunes the
// node's subtree. Nodes already on the current path are skipped, so walking
// a cyclic relationship set terminates.
func Walk(roots []*Node, fn func(n *Node, depth int) bool) {
	visited := make(map[string]bool)
	for _, root := range roots {
		walk(root, 0, visited, fn)
	}
}

func walk(n *Node, depth int, visited map[string]bool, fn func(n *Node, depth int) bool) {
	if visited[n.ID] {
		return
	}
	visited[n.ID] = true
	defer delete(visited, n.ID)

	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		walk(c, depth+1, visited, fn)
	}
}

// Count returns the number of nodes reachable from roots.
func Count(roots []*Node) int {
	total := 0
	Walk(roots, func(*Node, int) bool {
		total++
		return true
	})
	return total
}
