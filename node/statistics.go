package node

// Statistics holds aggregate counters over a full node set. Counters are
// always recomputed from the raw node/relationship list, never from a
// filtered view.
type Statistics struct {
	// TotalControls is the number of control nodes.
	TotalControls int `json:"totalControls" yaml:"totalControls"`

	// KeyControls is the number of controls flagged as key controls.
	KeyControls int `json:"keyControls" yaml:"keyControls"`

	// EffectiveControls is the number of controls whose canonical
	// effectiveness level is effective.
	EffectiveControls int `json:"effectiveControls" yaml:"effectiveControls"`

	// RisksWithoutControls is the number of risks with zero control children.
	RisksWithoutControls int `json:"risksWithoutControls" yaml:"risksWithoutControls"`

	// ControlsWithoutTesting is the number of controls with no testing
	// history (canonical effectiveness level not-tested).
	ControlsWithoutTesting int `json:"controlsWithoutTesting" yaml:"controlsWithoutTesting"`
}
