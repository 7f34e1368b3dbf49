package filter

import (
	"strings"

	"github.com/google/cel-go/cel"

	"github.com/audit-brands/rcm/effectiveness"
	"github.com/audit-brands/rcm/node"
	"github.com/audit-brands/rcm/tree"
)

// matchState classifies a node against the active per-node dimensions.
type matchState int

const (
	// matchNeutral: no active dimension applies to this node's type.
	matchNeutral matchState = iota

	// matchPass: at least one active dimension applies and all that apply pass.
	matchPass

	// matchFail: an active, applicable dimension rejected the node.
	matchFail
)

// Apply filters each root independently and returns the surviving trees.
// The input trees are never mutated; surviving nodes are copies with pruned
// child lists. An invalid expression dimension is the only error source.
func Apply(roots []*tree.Node, f Filter) ([]*tree.Node, error) {
	prg, err := f.compileExpression()
	if err != nil {
		return nil, err
	}
	e := &evaluator{filter: f, program: prg, active: f.active()}

	out := make([]*tree.Node, 0, len(roots))
	for _, root := range roots {
		visited := make(map[string]bool)
		if kept := e.filterNode(root, false, visited); kept != nil {
			out = append(out, kept)
		}
	}
	return out, nil
}

type evaluator struct {
	filter  Filter
	program cel.Program
	active  bool
}

// filterNode evaluates one node bottom-up. ancestorPassed is true when some
// ancestor on the current path matched the active predicates, which carries
// exempt (neutral) descendants along with it. visited tracks the current
// path so cyclic input terminates.
func (e *evaluator) filterNode(n *tree.Node, ancestorPassed bool, visited map[string]bool) *tree.Node {
	if visited[n.ID] {
		return nil
	}
	visited[n.ID] = true
	defer delete(visited, n.ID)

	// The view cap drops the node and everything below it, independent of
	// the other dimensions.
	if !e.filter.View.Keeps(n.Type) {
		return nil
	}

	state := e.evaluate(n)
	childAncestorPassed := ancestorPassed || state == matchPass

	var kept []*tree.Node
	for _, c := range n.Children {
		if k := e.filterNode(c, childAncestorPassed, visited); k != nil {
			kept = append(kept, k)
		}
	}

	keep := false
	switch state {
	case matchPass:
		keep = true
	case matchFail:
		// Ancestors of matches stay visible.
		keep = len(kept) > 0
	case matchNeutral:
		keep = !e.active || ancestorPassed || len(kept) > 0
	}
	if !keep {
		return nil
	}

	return &tree.Node{Node: n.Node, Children: kept}
}

// evaluate classifies the node against every active per-node dimension.
func (e *evaluator) evaluate(n *tree.Node) matchState {
	applied := false

	if e.filter.Search != "" {
		applied = true
		if !strings.Contains(strings.ToLower(n.Name), strings.ToLower(e.filter.Search)) {
			return matchFail
		}
	}

	if e.filter.Effectiveness != "" && n.Type == node.TypeControl {
		applied = true
		// A control with no raw signal is treated as not-tested here.
		if effectiveness.Canonicalize(n.Effectiveness) != e.filter.Effectiveness {
			return matchFail
		}
	}

	if e.filter.RiskLevel != "" && n.Type == node.TypeRisk {
		applied = true
		impact, _ := n.Metadata.String(node.MetaImpact)
		if !strings.EqualFold(impact, e.filter.RiskLevel) {
			return matchFail
		}
	}

	if e.filter.UncoveredOnly && n.Type == node.TypeRisk {
		applied = true
		// Coverage is structural: evaluated on the unfiltered children.
		if n.HasChildOfType(node.TypeControl) {
			return matchFail
		}
	}

	if e.program != nil {
		applied = true
		if !e.evalExpression(n) {
			return matchFail
		}
	}

	if applied {
		return matchPass
	}
	return matchNeutral
}

// evalExpression runs the compiled CEL program against one node. Runtime
// evaluation errors count as a non-match rather than aborting the filter.
func (e *evaluator) evalExpression(n *tree.Node) bool {
	metadata := map[string]any(n.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}

	out, _, err := e.program.Eval(map[string]any{
		"id":            n.ID,
		"type":          string(n.Type),
		"name":          n.Name,
		"status":        n.Status,
		"effectiveness": string(effectiveness.Canonicalize(n.Effectiveness)),
		"metadata":      metadata,
	})
	if err != nil {
		return false
	}
	matched, ok := out.Value().(bool)
	return ok && matched
}
