// Package export flattens the full, unfiltered node list into a CSV
// document.
//
// Export is a full-data dump by design: active view filters never reduce it.
// Column order is fixed, data cells are always double-quoted with embedded
// quotes doubled, and the Parent column is resolved from the node's parent
// hint with a fallback to the relationship list.
package export
