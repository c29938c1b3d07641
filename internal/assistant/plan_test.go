package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanGateAuthorize(t *testing.T) {
	gate := NewPlanGate(DefaultFreeEntryLimit)

	tests := []struct {
		name       string
		tier       PlanTier
		entryCount int
		allowed    bool
	}{
		{"free under limit", PlanFree, 1, true},
		{"free at limit", PlanFree, 8, true},
		{"free over limit", PlanFree, 9, false},
		{"free far over limit", PlanFree, 100, false},
		{"basic over limit", PlanBasic, 100, true},
		{"pro over limit", PlanPro, 100, true},
		{"enterprise over limit", PlanEnterprise, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, gate.Authorize(tt.tier, tt.entryCount))
		})
	}
}

func TestPlanGateCustomLimit(t *testing.T) {
	gate := NewPlanGate(2)
	assert.True(t, gate.Authorize(PlanFree, 2))
	assert.False(t, gate.Authorize(PlanFree, 3))
}

func TestPlanGateDefaultsOnNonPositiveLimit(t *testing.T) {
	gate := NewPlanGate(0)
	assert.True(t, gate.Authorize(PlanFree, DefaultFreeEntryLimit))
	assert.False(t, gate.Authorize(PlanFree, DefaultFreeEntryLimit+1))
}

func TestParsePlanTier(t *testing.T) {
	tier, err := ParsePlanTier("  PRO ")
	require.NoError(t, err)
	assert.Equal(t, PlanPro, tier)

	_, err = ParsePlanTier("platinum")
	require.Error(t, err)
}
