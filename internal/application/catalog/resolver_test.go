package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplan-go/internal/application/catalog"
	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

func testRecipes() production.RecipeMap {
	return production.RecipeMap{
		"Iron Ingot": {
			Building: "Smelter",
			Name:     "Iron Ingot",
			In1:      &production.Ingredient{Part: "Iron Ore", Quantity: 30},
			Out1:     &production.Ingredient{Part: "Iron Ingot", Quantity: 30},
		},
		"Copper Ingot": {
			Building: "Smelter",
			Name:     "Copper Ingot",
			In1:      &production.Ingredient{Part: "Copper Ore", Quantity: 30},
			Out1:     &production.Ingredient{Part: "Copper Ingot", Quantity: 30},
		},
		"Sulfuric Acid": {
			Building: "Refinery",
			Name:     "Sulfuric Acid",
			In1:      &production.Ingredient{Part: "Sulfur", Quantity: 50},
			In2:      &production.Ingredient{Part: "Water", Quantity: 50},
			Out1:     &production.Ingredient{Part: "Sulfuric Acid", Quantity: 50},
		},
	}
}

func TestFindRecipe_ExactIsCaseInsensitive(t *testing.T) {
	r := catalog.NewResolver(testRecipes())

	for _, query := range []string{"Iron Ingot", "iron ingot", "IRON INGOT"} {
		recipe, err := r.FindRecipe(query)
		require.NoError(t, err, "query %q", query)
		assert.Equal(t, "Iron Ingot", recipe.Name)
	}
}

func TestFindRecipe_FuzzyFallback(t *testing.T) {
	r := catalog.NewResolver(testRecipes())

	recipe, err := r.FindRecipe("iron ingto")
	require.NoError(t, err)
	assert.Equal(t, "Iron Ingot", recipe.Name)
}

func TestFindRecipe_TooFarIsNotFound(t *testing.T) {
	r := catalog.NewResolver(testRecipes())

	_, err := r.FindRecipe("Turbo Motor")
	require.Error(t, err)

	var target *catalog.ErrRecipeNotFound
	assert.ErrorAs(t, err, &target)
}

func TestFindIngredientName_CoversAllCatalogMaterials(t *testing.T) {
	r := catalog.NewResolver(testRecipes())

	// Inputs and outputs of every recipe are resolvable
	for _, query := range []string{"iron ore", "Copper Ingot", "water", "sulfur"} {
		_, err := r.FindIngredientName(query)
		assert.NoError(t, err, "query %q", query)
	}

	name, err := r.FindIngredientName("coper ore")
	require.NoError(t, err)
	assert.Equal(t, "Copper Ore", name)
}

func TestFindIngredientName_NotFound(t *testing.T) {
	r := catalog.NewResolver(testRecipes())

	_, err := r.FindIngredientName("Bauxite")
	require.Error(t, err)

	var target *catalog.ErrMaterialNotFound
	assert.ErrorAs(t, err, &target)
}

func TestFindIngredientInRecipe_MatchesOnlyInputs(t *testing.T) {
	r := catalog.NewResolver(testRecipes())
	acid, err := r.FindRecipe("Sulfuric Acid")
	require.NoError(t, err)

	ing, err := r.FindIngredientInRecipe(acid, "water")
	require.NoError(t, err)
	assert.Equal(t, "Water", ing.Part)
	assert.Equal(t, 50.0, ing.Quantity)

	// The output is not an input
	_, err = r.FindIngredientInRecipe(acid, "Sulfuric Acid")
	require.Error(t, err)

	var target *catalog.ErrNotRecipeInput
	assert.ErrorAs(t, err, &target)
}
