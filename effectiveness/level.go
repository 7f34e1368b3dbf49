package effectiveness

import (
	"fmt"
	"strings"
)

// Level is the canonical classification of a control's demonstrated
// operating effectiveness.
type Level string

const (
	// LevelEffective indicates the control operated as designed.
	LevelEffective Level = "effective"

	// LevelPartiallyEffective indicates the control operated with exceptions.
	LevelPartiallyEffective Level = "partially-effective"

	// LevelIneffective indicates the control failed testing.
	LevelIneffective Level = "ineffective"

	// LevelNotTested indicates the control has no testing history. Unknown
	// and absent raw signals canonicalize here.
	LevelNotTested Level = "not-tested"

	// LevelPending indicates testing is scheduled but not concluded.
	LevelPending Level = "pending"
)

// canonicalLevels maps normalized raw signals to canonical levels. Keys are
// lowercase with internal whitespace collapsed to single hyphens, so the
// canonical values themselves are valid keys and Canonicalize is idempotent.
var canonicalLevels = map[string]Level{
	"effective":           LevelEffective,
	"partially-effective": LevelPartiallyEffective,
	"partial":             LevelPartiallyEffective,
	"ineffective":         LevelIneffective,
	"not-tested":          LevelNotTested,
	"pending":             LevelPending,
}

// baseScores maps levels to the fixed 0-100 display score.
var baseScores = map[Level]int{
	LevelEffective:          90,
	LevelPartiallyEffective: 60,
	LevelIneffective:        30,
	LevelPending:            0,
	LevelNotTested:          0,
}

// Canonicalize normalizes a raw effectiveness signal to a canonical level.
// Normalization lowercases the input and collapses internal whitespace runs
// to single hyphens before consulting the mapping table. Unrecognized or
// empty input yields LevelNotTested; Canonicalize never fails.
func Canonicalize(raw string) Level {
	key := strings.Join(strings.Fields(strings.ToLower(raw)), "-")
	if level, ok := canonicalLevels[key]; ok {
		return level
	}
	return LevelNotTested
}

// IsValid returns true if the level is in the canonical set.
func (l Level) IsValid() bool {
	_, ok := baseScores[l]
	return ok
}

// Score returns the fixed base score for the level, 0 for invalid levels.
func (l Level) Score() int {
	return baseScores[l]
}

// String returns the string representation of the level.
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a string into a Level value.
// Returns an error if the string is not a canonical level; use Canonicalize
// for tolerant mapping of raw upstream signals.
func ParseLevel(s string) (Level, error) {
	level := Level(s)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid effectiveness level: %s", s)
	}
	return level, nil
}

// AllLevels returns all canonical levels ordered from strongest to weakest.
func AllLevels() []Level {
	return []Level{
		LevelEffective,
		LevelPartiallyEffective,
		LevelIneffective,
		LevelPending,
		LevelNotTested,
	}
}
