// Package filter applies composable, multi-dimensional predicates to an RCM
// tree while preserving ancestor/descendant structure.
//
// # Dimensions
//
// A Filter combines up to six dimensions, all optional:
//
//   - Search: case-insensitive substring match on every node's name.
//   - Effectiveness: canonical level match, controls only.
//   - RiskLevel: metadata impact match, risks only.
//   - UncoveredOnly: keeps risks with no control children, risks only.
//   - View: a global cap on node type by granularity.
//   - Expression: a CEL expression over the node's fields.
//
// # Survival rule
//
// Apply evaluates each node bottom-up. A node survives when it is inside the
// view cap and either its own applicable predicates pass, or at least one of
// its children survived, or none of the active predicates applies to its
// type and a matching ancestor already carried its subtree in. The last
// clause is what makes type-scoped filters behave on a hierarchy: matching a
// risk keeps its controls, while a risk that fails the risk-level filter
// loses its whole subtree unless some descendant matches on its own.
//
// Apply is a pure function over the input tree: it returns new nodes and is
// safe to call on every keystroke. Recursion is bounded by a visited-ID
// guard, so a cyclic relationship set degrades to a bounded traversal.
package filter
