package blueprint_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplan-go/internal/domain/blueprint"
)

func TestPowerUsageMW_FullClockIsNameplate(t *testing.T) {
	p, err := blueprint.PowerUsageMW("Assembler", 6, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 6*15.0, p, 1e-9)
}

func TestPowerUsageMW_FollowsPowerCurve(t *testing.T) {
	p, err := blueprint.PowerUsageMW("Constructor", 1, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 4.0*math.Pow(0.5, math.Log2(2.5)), p, 1e-9)
}

func TestPowerUsageMW_StrictlyIncreasesWithClock(t *testing.T) {
	prev := 0.0
	for _, clock := range []float64{0.1, 0.25, 0.5, 0.8667, 1.0, 1.5, 2.0, 2.4999} {
		p, err := blueprint.PowerUsageMW("Manufacturer", 4, clock)
		require.NoError(t, err)
		assert.Greater(t, p, prev, "power must increase at clock %v", clock)
		prev = p
	}
}

func TestPowerUsageMW_ClockDomainBounds(t *testing.T) {
	for _, clock := range []float64{0, -0.5, 2.5, 3.0} {
		_, err := blueprint.PowerUsageMW("Smelter", 1, clock)
		require.Error(t, err, "clock %v must be rejected", clock)

		var target *blueprint.ErrClockOutOfRange
		assert.ErrorAs(t, err, &target)
	}
}

func TestPowerUsageMW_UnknownBuilding(t *testing.T) {
	_, err := blueprint.PowerUsageMW("Nuclear Power Plant", 1, 1.0)
	require.Error(t, err)

	var target *blueprint.ErrNoBasePower
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "Nuclear Power Plant", target.Building)
}

func TestBasePowerMW_KnownBuildings(t *testing.T) {
	for building, want := range map[string]float64{
		"Constructor":  4,
		"Assembler":    15,
		"Manufacturer": 55,
		"Refinery":     30,
		"Foundry":      16,
	} {
		p, err := blueprint.BasePowerMW(building)
		require.NoError(t, err)
		assert.Equal(t, want, p)
	}
}
