package node

import "fmt"

// Type identifies an entity's position in the compliance hierarchy.
type Type string

const (
	// TypeCompany is the root entity type. Every tree root is a company.
	TypeCompany Type = "company"

	// TypeProcess is a business process owned by a company.
	TypeProcess Type = "process"

	// TypeSubprocess is a subdivision of a process.
	TypeSubprocess Type = "subprocess"

	// TypeRisk is a risk identified within a process or subprocess.
	TypeRisk Type = "risk"

	// TypeControl is a control mitigating a risk.
	TypeControl Type = "control"
)

// typeRanks orders node types from root (company) to leaf (control).
// Lower rank means closer to the root.
var typeRanks = map[Type]int{
	TypeCompany:    0,
	TypeProcess:    1,
	TypeSubprocess: 2,
	TypeRisk:       3,
	TypeControl:    4,
}

// IsValid returns true if the type is one of the five hierarchy types.
func (t Type) IsValid() bool {
	_, ok := typeRanks[t]
	return ok
}

// Rank returns the type's depth rank in the hierarchy, company=0 through
// control=4. Returns -1 for invalid types.
func (t Type) Rank() int {
	if rank, ok := typeRanks[t]; ok {
		return rank
	}
	return -1
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// ParseType parses a string into a Type value.
// Returns an error if the string is not a valid node type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid node type: %s", s)
	}
	return t, nil
}

// AllTypes returns all valid node types in hierarchy order, root first.
func AllTypes() []Type {
	return []Type{TypeCompany, TypeProcess, TypeSubprocess, TypeRisk, TypeControl}
}
