package stats

import (
	"github.com/audit-brands/rcm/effectiveness"
	"github.com/audit-brands/rcm/node"
)

// Compute derives the aggregate counters from the full node set in a single
// pass per list. Coverage (risksWithoutControls) is structural: a risk is
// covered when any relationship attaches a control child to it, whether or
// not the risk is reachable from a company root.
func Compute(nodes []node.Node, relationships []node.Relationship) node.Statistics {
	var s node.Statistics

	typeByID := make(map[string]node.Type, len(nodes))
	for _, n := range nodes {
		if _, exists := typeByID[n.ID]; !exists {
			typeByID[n.ID] = n.Type
		}
	}

	covered := make(map[string]bool)
	for _, rel := range relationships {
		if typeByID[rel.To] == node.TypeControl {
			covered[rel.From] = true
		}
	}

	for _, n := range nodes {
		switch n.Type {
		case node.TypeControl:
			s.TotalControls++
			if n.KeyControl() {
				s.KeyControls++
			}
			switch effectiveness.Canonicalize(n.Effectiveness) {
			case effectiveness.LevelEffective:
				s.EffectiveControls++
			case effectiveness.LevelNotTested:
				s.ControlsWithoutTesting++
			}
		case node.TypeRisk:
			if !covered[n.ID] {
				s.RisksWithoutControls++
			}
		}
	}
	return s
}
