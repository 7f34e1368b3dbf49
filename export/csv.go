package export

import (
	"strings"
	"time"

	"github.com/audit-brands/rcm/node"
)

// Header is the fixed CSV header row.
const Header = "Type,Name,Parent,Status,Effectiveness,Risk Level,Control Type,Frequency,Automation,Key Control"

// CSV renders the flat node list as a CSV document: the fixed header row
// followed by one row per node in input order, rows newline-joined with no
// trailing newline.
//
// Every data cell is wrapped in double quotes with embedded quotes doubled.
// The Parent column shows the parent's display name, resolved from the
// node's parent hint when set, otherwise from the first relationship naming
// the node as a child; the two sources are deliberately not cross-validated.
// Risk Level is formatted "impact/likelihood" for risks, Control Type /
// Frequency / Automation are filled for controls, and Key Control is "Yes"
// or empty.
func CSV(nodes []node.Node, relationships []node.Relationship) string {
	nameByID := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if _, exists := nameByID[n.ID]; !exists {
			nameByID[n.ID] = n.Name
		}
	}

	// Fallback parent ids from the relationship list; first edge wins.
	parentByID := make(map[string]string, len(relationships))
	for _, rel := range relationships {
		if _, exists := parentByID[rel.To]; !exists {
			parentByID[rel.To] = rel.From
		}
	}

	var b strings.Builder
	b.WriteString(Header)

	for _, n := range nodes {
		parentID := n.Parent
		if parentID == "" {
			parentID = parentByID[n.ID]
		}

		b.WriteByte('\n')
		writeRow(&b, []string{
			string(n.Type),
			n.Name,
			nameByID[parentID],
			n.Status,
			n.Effectiveness,
			riskLevel(n),
			controlMeta(n, node.MetaControlType),
			controlMeta(n, node.MetaFrequency),
			controlMeta(n, node.MetaAutomation),
			keyControl(n),
		})
	}
	return b.String()
}

// Filename returns the export filename for the given invocation time,
// rcm-export-<ISO date>.csv in UTC.
func Filename(t time.Time) string {
	return "rcm-export-" + t.UTC().Format("2006-01-02") + ".csv"
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
}

// riskLevel formats "impact/likelihood" for risk nodes, empty otherwise.
func riskLevel(n node.Node) string {
	if !n.IsRisk() {
		return ""
	}
	impact, _ := n.Metadata.String(node.MetaImpact)
	likelihood, _ := n.Metadata.String(node.MetaLikelihood)
	if impact == "" && likelihood == "" {
		return ""
	}
	return impact + "/" + likelihood
}

// controlMeta returns a metadata string for control nodes, empty otherwise.
func controlMeta(n node.Node, key string) string {
	if !n.IsControl() {
		return ""
	}
	v, _ := n.Metadata.String(key)
	return v
}

// keyControl returns "Yes" for flagged controls, empty otherwise.
func keyControl(n node.Node) string {
	if n.IsControl() && n.KeyControl() {
		return "Yes"
	}
	return ""
}
