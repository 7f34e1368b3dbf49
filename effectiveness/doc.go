// Package effectiveness maps raw per-control effectiveness signals to a
// canonical level, a numeric display score, and a trend, and computes the
// aggregate health score over a set of controls.
//
// Raw signals are free-form strings from upstream systems ("Effective",
// "partially effective", "Partial", ...). Canonicalize normalizes them once
// through a single table; anything it does not recognize, including the
// absent signal, becomes LevelNotTested. Base scores per level are fixed
// constants, not configuration.
//
// The health score applies per-control adjustments (automation bonus,
// retired penalty, key-control weighting) that never appear in the
// per-control display score; it exists only for the aggregate metric.
package effectiveness
