package optimizer

import "gonum.org/v1/gonum/stat/distuv"

// PolicyTable maps nine-box segment codes to target service levels. The
// mapping is configuration data; codes missing from the table fall back to
// a single conservative service level.
type PolicyTable struct {
	levels   map[string]float64
	fallback float64
}

// NewPolicyTable builds a policy table from a segment→service-level map and
// a fallback level for unmapped codes.
func NewPolicyTable(levels map[string]float64, fallback float64) *PolicyTable {
	copied := make(map[string]float64, len(levels))
	for code, level := range levels {
		copied[code] = level
	}
	return &PolicyTable{levels: copied, fallback: fallback}
}

// DefaultPolicyTable returns the standard tuning: 0.97 for A parts, 0.93
// for B parts, 0.90 for predictable C parts and 0.85 for CH plus anything
// unmapped.
func DefaultPolicyTable() *PolicyTable {
	return NewPolicyTable(map[string]float64{
		"AL": 0.97, "AM": 0.97, "AH": 0.97,
		"BL": 0.93, "BM": 0.93, "BH": 0.93,
		"CL": 0.90, "CM": 0.90,
		"CH": 0.85,
	}, 0.85)
}

// ServiceLevel returns the target service level for a segment code.
func (p *PolicyTable) ServiceLevel(code string) float64 {
	if level, ok := p.levels[code]; ok {
		return level
	}
	return p.fallback
}

// Z returns the standard-normal quantile of the segment's service level.
func (p *PolicyTable) Z(code string) float64 {
	level := p.ServiceLevel(code)
	// Quantile is only defined on [0, 1]; clamp misconfigured levels.
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	return distuv.UnitNormal.Quantile(level)
}
