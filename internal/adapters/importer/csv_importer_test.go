package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplan-go/internal/adapters/importer"
	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

const sampleCSV = `Smelter,Iron Ingot,2,FALSE,Tier 0,TRUE,Iron Ore,30,,,,,,,Iron Ingot,30,,
Refinery,Fuel,6,FALSE,Tier 5,TRUE,Crude Oil,60,,,,,,,Fuel,40,Polymer Resin,30
,,,,,,,,,,,,,,,,,
Manufacturer,Time Crystal,10,FALSE,MAM,FALSE,Diamonds,2,,,,,,,Time Crystal,1,,
`

func TestImport_ParsesRows(t *testing.T) {
	recipes, err := importer.Import(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, recipes, 3, "padding row must be skipped")

	ingot := recipes[0]
	assert.Equal(t, "Smelter", ingot.Building)
	assert.Equal(t, "Iron Ingot", ingot.Name)
	assert.Equal(t, 2.0, ingot.CraftTimeSeconds)
	assert.False(t, ingot.IsAlt)
	assert.Equal(t, "Tier 0", ingot.Unlocks)
	assert.True(t, ingot.IsUnlocked)
	require.NotNil(t, ingot.In1)
	assert.Equal(t, production.Ingredient{Part: "Iron Ore", Quantity: 30}, *ingot.In1)
	assert.Nil(t, ingot.In2)
	assert.Nil(t, ingot.Out2)

	fuel := recipes[1]
	require.NotNil(t, fuel.Out2)
	assert.Equal(t, "Polymer Resin", fuel.Out2.Part)
	assert.Equal(t, 30.0, fuel.Out2.Quantity)
}

func TestImport_BadQuantityFails(t *testing.T) {
	bad := "Smelter,Iron Ingot,2,FALSE,Tier 0,TRUE,Iron Ore,lots,,,,,,,Iron Ingot,30,,\n"
	_, err := importer.Import(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quantity")
}

func TestImport_BadCraftTimeFails(t *testing.T) {
	bad := "Smelter,Iron Ingot,fast,FALSE,Tier 0,TRUE,Iron Ore,30,,,,,,,Iron Ingot,30,,\n"
	_, err := importer.Import(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid craft time")
}

func TestApplyPatches_FixesTimeCrystalRatio(t *testing.T) {
	recipes, err := importer.Import(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	require.NoError(t, importer.ApplyPatches(recipes))

	tc := recipes[2]
	require.Equal(t, "Time Crystal", tc.Name)
	assert.Equal(t, 12.0, tc.In1.Quantity)
}

func TestApplyPatches_MissingRecipeFails(t *testing.T) {
	err := importer.ApplyPatches(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Time Crystal")
}

func TestCustomRecipes_BurnUranium(t *testing.T) {
	custom := importer.CustomRecipes()
	require.Len(t, custom, 1)

	burn := custom[0]
	assert.Equal(t, "Nuclear Power Plant", burn.Building)
	assert.Equal(t, "Burn Uranium", burn.Name)
	assert.Equal(t, 300.0, burn.CraftTimeSeconds)
	assert.Equal(t, 0.2, burn.In1.Quantity)
	assert.Equal(t, "Water", burn.In2.Part)
	assert.Equal(t, "Uranium Waste", burn.Out1.Part)
}

func TestToMap_RejectsDuplicateNames(t *testing.T) {
	recipes := []*production.Recipe{
		{Name: "Iron Ingot"},
		{Name: "Iron Ingot"},
	}
	_, err := importer.ToMap(recipes)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate recipe name")
}

func TestToMap_KeysByName(t *testing.T) {
	recipes, err := importer.Import(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	m, err := importer.ToMap(recipes)
	require.NoError(t, err)
	require.Len(t, m, 3)
	assert.Same(t, recipes[1], m["Fuel"])
}
