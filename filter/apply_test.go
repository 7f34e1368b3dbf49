package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audit-brands/rcm/effectiveness"
	"github.com/audit-brands/rcm/node"
	"github.com/audit-brands/rcm/tree"
)

// fixture builds:
//
//	c1 Acme
//	└── p1 Finance
//	    ├── s1 Payroll
//	    │   ├── r1 Unauthorized payments (impact High)
//	    │   │   ├── ctl1 Payment approval (Effective)
//	    │   │   └── ctl2 Vendor screening (no signal)
//	    │   └── r2 Duplicate invoices (impact Low)
//	    │       └── ctl3 Invoice matching (Partially Effective)
//	    └── s2 Reporting
//	        └── r3 Late filings (impact High, uncovered)
func fixture(t *testing.T) []*tree.Node {
	t.Helper()
	nodes := []node.Node{
		{ID: "c1", Type: node.TypeCompany, Name: "Acme"},
		{ID: "p1", Type: node.TypeProcess, Name: "Finance"},
		{ID: "s1", Type: node.TypeSubprocess, Name: "Payroll"},
		{ID: "s2", Type: node.TypeSubprocess, Name: "Reporting"},
		{ID: "r1", Type: node.TypeRisk, Name: "Unauthorized payments", Metadata: node.Metadata{node.MetaImpact: "High"}},
		{ID: "r2", Type: node.TypeRisk, Name: "Duplicate invoices", Metadata: node.Metadata{node.MetaImpact: "Low"}},
		{ID: "r3", Type: node.TypeRisk, Name: "Late filings", Metadata: node.Metadata{node.MetaImpact: "High"}},
		{ID: "ctl1", Type: node.TypeControl, Name: "Payment approval", Effectiveness: "Effective"},
		{ID: "ctl2", Type: node.TypeControl, Name: "Vendor screening"},
		{ID: "ctl3", Type: node.TypeControl, Name: "Invoice matching", Effectiveness: "Partially Effective"},
	}
	rels := []node.Relationship{
		{From: "c1", To: "p1"},
		{From: "p1", To: "s1"},
		{From: "p1", To: "s2"},
		{From: "s1", To: "r1"},
		{From: "s1", To: "r2"},
		{From: "s2", To: "r3"},
		{From: "r1", To: "ctl1"},
		{From: "r1", To: "ctl2"},
		{From: "r2", To: "ctl3"},
	}
	return tree.Build(nodes, rels)
}

// ids flattens a forest into reachable node IDs.
func ids(roots []*tree.Node) map[string]bool {
	out := make(map[string]bool)
	tree.Walk(roots, func(n *tree.Node, _ int) bool {
		out[n.ID] = true
		return true
	})
	return out
}

func TestApply_IdentityFilter(t *testing.T) {
	roots := fixture(t)

	filtered, err := Apply(roots, Filter{})
	require.NoError(t, err)

	assert.Equal(t, tree.Count(roots), tree.Count(filtered), "identity filter must preserve node count")
	assert.Len(t, filtered, len(roots))
	// Shape preserved: same children at the root, in order.
	require.NotEmpty(t, filtered)
	assert.Equal(t, "c1", filtered[0].ID)
	require.Len(t, filtered[0].Children, 1)
	assert.Equal(t, "p1", filtered[0].Children[0].ID)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	roots := fixture(t)
	before := tree.Count(roots)

	_, err := Apply(roots, Filter{Search: "Payment"})
	require.NoError(t, err)

	assert.Equal(t, before, tree.Count(roots), "input tree must be untouched")
}

func TestApply_SearchKeepsAncestors(t *testing.T) {
	roots := fixture(t)

	filtered, err := Apply(roots, Filter{Search: "payment"})
	require.NoError(t, err)

	got := ids(filtered)
	// ctl1 and r1 both contain "payment"; every ancestor up to the root stays.
	for _, want := range []string{"c1", "p1", "s1", "r1", "ctl1"} {
		assert.True(t, got[want], "expected %s in filtered tree", want)
	}
	// Search is per-node: non-matching siblings and subtrees are gone.
	for _, drop := range []string{"ctl2", "r2", "ctl3", "s2", "r3"} {
		assert.False(t, got[drop], "expected %s to be dropped", drop)
	}
}

func TestApply_EffectivenessFilter(t *testing.T) {
	roots := fixture(t)

	filtered, err := Apply(roots, Filter{Effectiveness: effectiveness.LevelEffective})
	require.NoError(t, err)

	got := ids(filtered)
	assert.True(t, got["ctl1"])
	assert.False(t, got["ctl2"], "control without signal is not-tested, not effective")
	assert.False(t, got["ctl3"])
	// Ancestors of the surviving control remain.
	for _, want := range []string{"c1", "p1", "s1", "r1"} {
		assert.True(t, got[want], "expected ancestor %s", want)
	}
	// Branches with no matching control disappear.
	assert.False(t, got["r2"])
	assert.False(t, got["s2"])
}

func TestApply_EffectivenessFilter_AbsentSignalIsNotTested(t *testing.T) {
	roots := fixture(t)

	filtered, err := Apply(roots, Filter{Effectiveness: effectiveness.LevelNotTested})
	require.NoError(t, err)

	got := ids(filtered)
	assert.True(t, got["ctl2"])
	assert.False(t, got["ctl1"])
}

func TestApply_RiskLevelFilter(t *testing.T) {
	roots := fixture(t)

	filtered, err := Apply(roots, Filter{RiskLevel: "high"})
	require.NoError(t, err)

	got := ids(filtered)
	// Matching risks keep their whole subtrees plus ancestors.
	for _, want := range []string{"c1", "p1", "s1", "s2", "r1", "r3", "ctl1", "ctl2"} {
		assert.True(t, got[want], "expected %s in filtered tree", want)
	}
	// The low risk's subtree is dropped entirely.
	assert.False(t, got["r2"])
	assert.False(t, got["ctl3"])
}

func TestApply_UncoveredRisksOnly(t *testing.T) {
	roots := fixture(t)

	filtered, err := Apply(roots, Filter{UncoveredOnly: true})
	require.NoError(t, err)

	got := ids(filtered)
	assert.True(t, got["r3"], "risk with zero control children is retained")
	assert.False(t, got["r1"], "covered risk is excluded")
	assert.False(t, got["r2"], "covered risk is excluded")
}

func TestApply_ViewDepth(t *testing.T) {
	roots := fixture(t)

	tests := []struct {
		name      string
		view      ViewDepth
		wantCount int
	}{
		{"process view", ViewProcess, 2},       // c1, p1
		{"subprocess view", ViewSubprocess, 4}, // c1, p1, s1, s2
		{"full view", ViewFull, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := Apply(roots, Filter{View: tt.view})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, tree.Count(filtered))
		})
	}
}

func TestApply_ViewDepthCombinesWithSearch(t *testing.T) {
	roots := fixture(t)

	// ctl1 matches the search but sits below the subprocess cap; the cap
	// wins and the match cannot resurrect the pruned depth.
	filtered, err := Apply(roots, Filter{Search: "Payment approval", View: ViewSubprocess})
	require.NoError(t, err)
	assert.Equal(t, 0, tree.Count(filtered))
}

func TestApply_CyclicInputTerminates(t *testing.T) {
	nodes := []node.Node{
		{ID: "c1", Type: node.TypeCompany, Name: "Acme"},
		{ID: "p1", Type: node.TypeProcess, Name: "Finance"},
	}
	rels := []node.Relationship{
		{From: "c1", To: "p1"},
		{From: "p1", To: "c1"},
	}
	roots := tree.Build(nodes, rels)

	filtered, err := Apply(roots, Filter{Search: "finance"})
	require.NoError(t, err)
	got := ids(filtered)
	assert.True(t, got["p1"])
	assert.True(t, got["c1"], "ancestor of the match survives")
}

func TestApply_Expression(t *testing.T) {
	roots := fixture(t)

	filtered, err := Apply(roots, Filter{
		Expression: `type == "risk" && metadata["impact"] == "High"`,
	})
	require.NoError(t, err)

	got := ids(filtered)
	assert.True(t, got["r1"])
	assert.True(t, got["r3"])
	assert.False(t, got["r2"])
	// Expression behaves like the other per-node dimensions: controls under
	// a matching risk fail the expression themselves and are not carried.
	assert.False(t, got["ctl1"])
}

func TestApply_ExpressionOverEffectiveness(t *testing.T) {
	roots := fixture(t)

	filtered, err := Apply(roots, Filter{
		Expression: `type != "control" || effectiveness == "effective"`,
	})
	require.NoError(t, err)

	got := ids(filtered)
	assert.True(t, got["ctl1"])
	assert.False(t, got["ctl2"])
	assert.False(t, got["ctl3"])
	assert.True(t, got["r2"], "non-control nodes pass the disjunction")
}

func TestApply_ExpressionCompileError(t *testing.T) {
	roots := fixture(t)

	_, err := Apply(roots, Filter{Expression: `name ==`})
	require.Error(t, err)

	_, err = Apply(roots, Filter{Expression: `name`})
	require.Error(t, err, "non-bool expression must be rejected")
}
