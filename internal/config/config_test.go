package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Load is a process-wide singleton, so every expectation lives in one test.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_OUTPUT_DIR", t.TempDir())
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVICE_LEVEL_CH", "0.80")

	cfg := Load()
	require.NotNil(t, cfg)

	// Env overrides win over defaults.
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.InDelta(t, 0.80, cfg.Policy.ServiceLevels["CH"], 1e-9)

	// Everything else keeps its default.
	assert.InDelta(t, 75.0, cfg.Policy.ACutoffPct, 1e-9)
	assert.InDelta(t, 95.0, cfg.Policy.BCutoffPct, 1e-9)
	assert.Equal(t, 36, cfg.Policy.WindowMonths)
	assert.InDelta(t, 2.0, cfg.Policy.VodLowThreshold, 1e-9)
	assert.InDelta(t, 4.0, cfg.Policy.VodHighThreshold, 1e-9)
	assert.Equal(t, 3, cfg.Policy.MinTransactions)
	assert.InDelta(t, 50.0, cfg.Policy.OrderingCost, 1e-9)
	assert.InDelta(t, 0.2, cfg.Policy.HoldingRate, 1e-9)
	assert.InDelta(t, 0.85, cfg.Policy.FallbackServiceLevel, 1e-9)

	require.Len(t, cfg.Policy.ServiceLevels, 9)
	assert.InDelta(t, 0.97, cfg.Policy.ServiceLevels["AL"], 1e-9)
	assert.InDelta(t, 0.93, cfg.Policy.ServiceLevels["BM"], 1e-9)
	assert.InDelta(t, 0.90, cfg.Policy.ServiceLevels["CL"], 1e-9)

	assert.False(t, cfg.Cache.Enabled)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)

	// The singleton returns the same instance on every call.
	assert.Same(t, cfg, Load())
}

func TestSplitOrigins(t *testing.T) {
	out := splitOrigins([]string{"http://a.example,http://b.example", " http://c.example ", ""})
	assert.Equal(t, []string{"http://a.example", "http://b.example", "http://c.example"}, out)

	assert.Nil(t, splitOrigins(nil))
}
