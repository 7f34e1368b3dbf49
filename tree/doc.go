// Package tree converts the flat node/relationship lists supplied by a graph
// source into rooted trees.
//
// Build runs in two passes: pass one indexes nodes by ID, pass two attaches
// children by walking relationships. Edges referencing unknown nodes are
// silently dropped, matching the engine's tolerance for data-quality issues.
// Roots are the company nodes in input order.
//
// The builder performs no cycle detection. Walk and the other recursive
// consumers in this module bound their traversal with a visited-ID guard so
// a malformed relationship set terminates instead of recursing without end.
package tree
