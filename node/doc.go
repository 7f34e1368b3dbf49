// Package node defines the data model for the Risk-Control Matrix: typed
// entities (companies, processes, subprocesses, risks, controls), the
// parent/child relationships connecting them, and the aggregate statistics
// counters computed over a full entity set.
//
// # Core Types
//
// Node is a single entity in the compliance hierarchy. Its Type fixes the
// entity's position in the hierarchy (company ⊃ process ⊃ subprocess ⊃
// {risk ⊃ control}); type-specific attributes live in the open Metadata bag.
//
// Relationship is a directed parent/child edge between two node IDs. Tree
// construction consumes relationships only; the optional Node.Parent field
// is an independent hint used by the flat CSV export.
//
// # Example
//
//	risk := node.New(node.TypeRisk, "Unauthorized journal entries").
//		WithMeta(node.MetaImpact, "High").
//		WithMeta(node.MetaLikelihood, "Medium")
//
//	ctl := node.New(node.TypeControl, "Journal entry approval").
//		WithEffectiveness("Partially Effective").
//		WithMeta(node.MetaKeyControl, true)
//
//	rel := node.NewRelationship(risk.ID, ctl.ID)
package node
