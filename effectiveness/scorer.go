package effectiveness

import (
	"math"

	"github.com/audit-brands/rcm/node"
)

// Health-score adjustments, applied per control when computing the aggregate
// only. The per-control display score never includes them.
const (
	automatedBonus   = 10
	retiredPenalty   = 20
	keyControlFactor = 1.5
)

// Score is the derived effectiveness of a single control. It is computed on
// demand from the control's raw signal and metadata, never stored.
type Score struct {
	// Level is the canonical effectiveness level.
	Level Level `json:"level"`

	// Score is the 0-100 display score for the level.
	Score int `json:"score"`

	// Trend is the direction the control is moving.
	Trend Trend `json:"trend,omitempty"`

	// LastTested is the date of the most recent test, from metadata.
	LastTested string `json:"lastTested,omitempty"`

	// TestCount is the number of recorded tests, from metadata.
	TestCount int `json:"testCount,omitempty"`

	// PassRate is the fraction of passing tests, from metadata.
	PassRate float64 `json:"passRate,omitempty"`
}

// ScoreControl computes the derived effectiveness score for a control node.
// The result for non-control nodes is meaningless; callers gate on type.
func ScoreControl(n node.Node) Score {
	level := Canonicalize(n.Effectiveness)
	lastTested, _ := n.Metadata.String(node.MetaLastTested)
	testCount, _ := n.Metadata.Int(node.MetaTestCount)
	passRate, _ := n.Metadata.Float(node.MetaPassRate)

	return Score{
		Level:      level,
		Score:      level.Score(),
		Trend:      TrendOf(n),
		LastTested: lastTested,
		TestCount:  testCount,
		PassRate:   passRate,
	}
}

// HealthScore computes the aggregate health metric over a set of controls.
//
// Each control starts from its level's base score, then: +10 when automation
// metadata equals "Automated", -20 when the control is retired, x1.5 when
// flagged as a key control. The adjusted score is clamped to [0, 100] before
// averaging. The result is the arithmetic mean rounded to the nearest
// integer, or 0 when the set is empty.
func HealthScore(controls []node.Node) int {
	if len(controls) == 0 {
		return 0
	}

	total := 0.0
	for _, c := range controls {
		score := float64(Canonicalize(c.Effectiveness).Score())
		if automation, _ := c.Metadata.String(node.MetaAutomation); automation == "Automated" {
			score += automatedBonus
		}
		if c.Status == node.StatusRetired {
			score -= retiredPenalty
		}
		if c.KeyControl() {
			score *= keyControlFactor
		}
		total += math.Min(100, math.Max(0, score))
	}

	return int(math.Round(total / float64(len(controls))))
}
