package production_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

func ingot() *production.Recipe {
	return &production.Recipe{
		Building:         "Smelter",
		Name:             "Iron Ingot",
		CraftTimeSeconds: 2,
		IsUnlocked:       true,
		In1:              &production.Ingredient{Part: "Iron Ore", Quantity: 30},
		Out1:             &production.Ingredient{Part: "Iron Ingot", Quantity: 30},
	}
}

func TestRecipe_InputsOutputsSkipAbsentSlots(t *testing.T) {
	r := &production.Recipe{
		Building: "Refinery",
		Name:     "Plastic",
		In1:      &production.Ingredient{Part: "Crude Oil", Quantity: 30},
		In3:      &production.Ingredient{Part: "Water", Quantity: 20},
		Out1:     &production.Ingredient{Part: "Plastic", Quantity: 20},
		Out2:     &production.Ingredient{Part: "Heavy Oil Residue", Quantity: 10},
	}

	inputs := r.Inputs()
	require.Len(t, inputs, 2)
	assert.Equal(t, "Crude Oil", inputs[0].Part)
	assert.Equal(t, "Water", inputs[1].Part)

	outputs := r.Outputs()
	require.Len(t, outputs, 2)
	assert.Equal(t, "Plastic", outputs[0].Part)

	assert.Len(t, r.Ingredients(), 4)
}

func TestRecipe_MaxTransportRates(t *testing.T) {
	r := &production.Recipe{
		Building: "Refinery",
		Name:     "Fuel",
		In1:      &production.Ingredient{Part: "Heavy Oil Residue", Quantity: 60},
		Out1:     &production.Ingredient{Part: "Fuel", Quantity: 40},
		Out2:     &production.Ingredient{Part: "Polymer Resin", Quantity: 30},
	}

	maxBelt, maxPipe := r.MaxTransportRates()
	assert.Equal(t, 30.0, maxBelt) // Polymer Resin is the only solid
	assert.Equal(t, 60.0, maxPipe) // Heavy Oil Residue beats Fuel
}

func TestRecipe_MaxTransportRates_BeltOnly(t *testing.T) {
	maxBelt, maxPipe := ingot().MaxTransportRates()
	assert.Equal(t, 30.0, maxBelt)
	assert.Equal(t, 0.0, maxPipe)
}

func TestRecipe_PerMinuteFactor(t *testing.T) {
	r := ingot()
	assert.InDelta(t, 2.0/60.0, r.PerMinuteFactor(), 1e-12)
}

func TestRecipe_CloneIsDeep(t *testing.T) {
	r := ingot()
	c := r.Clone()

	c.In1.Quantity = 999
	c.Name = "Changed"

	assert.Equal(t, 30.0, r.In1.Quantity)
	assert.Equal(t, "Iron Ingot", r.Name)
}
