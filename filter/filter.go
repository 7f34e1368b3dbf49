package filter

import (
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/audit-brands/rcm/effectiveness"
)

// Filter is a predicate set applied to a tree. The zero value is the
// identity filter: every dimension inactive, every node kept.
type Filter struct {
	// Search is a case-insensitive substring matched against node names.
	// Empty means inactive.
	Search string `json:"search,omitempty"`

	// Effectiveness keeps only controls at the given canonical level.
	// Empty means inactive; non-control nodes are exempt.
	Effectiveness effectiveness.Level `json:"effectiveness,omitempty"`

	// RiskLevel keeps only risks whose metadata impact matches it
	// case-insensitively. Empty means inactive; non-risk nodes are exempt.
	RiskLevel string `json:"riskLevel,omitempty"`

	// UncoveredOnly keeps only risks with no control children. The check is
	// structural: it looks at the unfiltered children, not the pruned ones.
	UncoveredOnly bool `json:"uncoveredOnly,omitempty"`

	// View caps visible node types by granularity. Empty means full view.
	View ViewDepth `json:"view,omitempty"`

	// Expression is an optional CEL expression evaluated per node against
	// the variables id, type, name, status, effectiveness (canonical level),
	// and metadata. It must produce a bool. Evaluation errors on a node
	// count as a non-match for that node.
	Expression string `json:"expression,omitempty"`
}

// active reports whether any per-node dimension is set. The view cap is not
// a per-node predicate; it is applied independently.
func (f Filter) active() bool {
	return f.Search != "" ||
		f.Effectiveness != "" ||
		f.RiskLevel != "" ||
		f.UncoveredOnly ||
		f.Expression != ""
}

// celEnv builds the CEL environment shared by all expression filters.
func celEnv() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("id", cel.StringType),
		cel.Variable("type", cel.StringType),
		cel.Variable("name", cel.StringType),
		cel.Variable("status", cel.StringType),
		cel.Variable("effectiveness", cel.StringType),
		cel.Variable("metadata", cel.MapType(cel.StringType, cel.DynType)),
	)
}

// compileExpression compiles the filter's CEL expression into a program.
// Returns (nil, nil) when no expression is set.
func (f Filter) compileExpression() (cel.Program, error) {
	if f.Expression == "" {
		return nil, nil
	}

	env, err := celEnv()
	if err != nil {
		return nil, fmt.Errorf("create expression environment: %w", err)
	}

	ast, issues := env.Compile(f.Expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile expression: %w", issues.Err())
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("expression must evaluate to bool, got %s", ast.OutputType())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build expression program: %w", err)
	}
	return prg, nil
}
