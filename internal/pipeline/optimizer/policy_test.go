package optimizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicyTableServiceLevels(t *testing.T) {
	table := DefaultPolicyTable()

	assert.InDelta(t, 0.97, table.ServiceLevel("AL"), 1e-9)
	assert.InDelta(t, 0.97, table.ServiceLevel("AH"), 1e-9)
	assert.InDelta(t, 0.93, table.ServiceLevel("BM"), 1e-9)
	assert.InDelta(t, 0.90, table.ServiceLevel("CL"), 1e-9)
	assert.InDelta(t, 0.85, table.ServiceLevel("CH"), 1e-9)
}

func TestPolicyTableUnknownCodeFallsBack(t *testing.T) {
	table := DefaultPolicyTable()

	assert.InDelta(t, 0.85, table.ServiceLevel("XX"), 1e-9)
	assert.InDelta(t, 0.85, table.ServiceLevel(""), 1e-9)
}

func TestPolicyTableZMatchesNormalQuantile(t *testing.T) {
	table := DefaultPolicyTable()

	assert.InDelta(t, 1.8808, table.Z("AL"), 1e-3)
	assert.InDelta(t, 1.4758, table.Z("BL"), 1e-3)
	assert.InDelta(t, 1.2816, table.Z("CL"), 1e-3)
	assert.InDelta(t, 1.0364, table.Z("CH"), 1e-3)
}

func TestPolicyTableZClampsMisconfiguredLevels(t *testing.T) {
	table := NewPolicyTable(map[string]float64{"AL": 1.5}, 0.85)

	// Clamped to 1.0, which maps to +Inf rather than panicking.
	assert.True(t, math.IsInf(table.Z("AL"), 1))

	table = NewPolicyTable(map[string]float64{"AL": -0.5}, 0.85)
	assert.True(t, math.IsInf(table.Z("AL"), -1))
}

func TestPolicyTableCopiesInputMap(t *testing.T) {
	levels := map[string]float64{"AL": 0.97}
	table := NewPolicyTable(levels, 0.85)

	levels["AL"] = 0.5
	assert.InDelta(t, 0.97, table.ServiceLevel("AL"), 1e-9)
}
