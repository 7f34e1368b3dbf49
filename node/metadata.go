package node

import "strings"

// Well-known metadata keys. Risk nodes carry impact/likelihood/assertions;
// control nodes carry the rest.
const (
	MetaImpact      = "impact"
	MetaLikelihood  = "likelihood"
	MetaAssertions  = "assertions"
	MetaControlType = "type"
	MetaFrequency   = "frequency"
	MetaAutomation  = "automation"
	MetaKeyControl  = "keyControl"
	MetaTrend       = "trend"
	MetaLastTested  = "lastTested"
	MetaTestCount   = "testCount"
	MetaPassRate    = "passRate"
)

// Metadata is an open key/value bag holding type-specific node attributes.
// Values arrive from JSON or YAML decoding, so numeric values may be
// float64, int, or int64 depending on the decoder.
type Metadata map[string]any

// String returns the value for key as a string.
// The second return is false when the key is absent or not a string.
func (m Metadata) String(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	return s, ok
}

// Bool returns the value for key interpreted as a boolean. Boolean true and
// the strings "true" and "yes" (case-insensitive) all count as true; any
// other or absent value is false.
func (m Metadata) Bool(key string) bool {
	if m == nil {
		return false
	}
	switch v := m[key].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true") || strings.EqualFold(v, "yes")
	default:
		return false
	}
}

// Int returns the value for key as an int, accepting the integer and float
// representations produced by JSON and YAML decoders.
func (m Metadata) Int(key string) (int, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// Float returns the value for key as a float64.
func (m Metadata) Float(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	switch v := m[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Clone returns a shallow copy of the metadata bag.
// A nil receiver yields a nil clone.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
