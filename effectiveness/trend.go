package effectiveness

import "github.com/audit-brands/rcm/node"

// Trend is the direction a control's effectiveness is moving.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// IsValid returns true if the trend is one of the known directions.
func (t Trend) IsValid() bool {
	switch t {
	case TrendImproving, TrendDeclining, TrendStable:
		return true
	default:
		return false
	}
}

// String returns the string representation of the trend.
func (t Trend) String() string {
	return string(t)
}

// TrendOf returns the trend carried in a control's metadata. The scorer does
// not derive trend from testing history; until a history component feeds
// real directions, absent or unknown metadata defaults to TrendStable.
func TrendOf(n node.Node) Trend {
	raw, _ := n.Metadata.String(node.MetaTrend)
	trend := Trend(raw)
	if !trend.IsValid() {
		return TrendStable
	}
	return trend
}
