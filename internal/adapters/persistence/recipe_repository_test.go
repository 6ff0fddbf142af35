package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/satisplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/satisplan-go/internal/domain/production"
	"github.com/andrescamacho/satisplan-go/internal/infrastructure/database"
)

func newTestRepository(t *testing.T) *persistence.GormRecipeRepository {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return persistence.NewGormRecipeRepository(db)
}

func sampleCatalog() []*production.Recipe {
	return []*production.Recipe{
		{
			Building:         "Smelter",
			Name:             "Iron Ingot",
			CraftTimeSeconds: 2,
			Unlocks:          "Tier 0",
			IsUnlocked:       true,
			In1:              &production.Ingredient{Part: "Iron Ore", Quantity: 30},
			Out1:             &production.Ingredient{Part: "Iron Ingot", Quantity: 30},
		},
		{
			Building:         "Refinery",
			Name:             "Diluted Fuel",
			CraftTimeSeconds: 6,
			IsAlt:            true,
			Unlocks:          "Hard Drive",
			In1:              &production.Ingredient{Part: "Heavy Oil Residue", Quantity: 50},
			In2:              &production.Ingredient{Part: "Water", Quantity: 100},
			Out1:             &production.Ingredient{Part: "Fuel", Quantity: 100},
		},
	}
}

func TestReplaceAll_RoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, sampleCatalog()))

	recipes, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	fuel := recipes["Diluted Fuel"]
	require.NotNil(t, fuel)
	assert.Equal(t, "Refinery", fuel.Building)
	assert.Equal(t, 6.0, fuel.CraftTimeSeconds)
	assert.True(t, fuel.IsAlt)
	assert.Equal(t, "Hard Drive", fuel.Unlocks)
	require.NotNil(t, fuel.In2)
	assert.Equal(t, production.Ingredient{Part: "Water", Quantity: 100}, *fuel.In2)
	assert.Nil(t, fuel.In3)
	assert.Nil(t, fuel.Out2)
}

func TestReplaceAll_DiscardsPreviousCatalog(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, sampleCatalog()))
	require.NoError(t, repo.ReplaceAll(ctx, sampleCatalog()[:1]))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.FindByName(ctx, "Diluted Fuel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe not found")
}

func TestFindByName(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, sampleCatalog()))

	ingot, err := repo.FindByName(ctx, "Iron Ingot")
	require.NoError(t, err)
	assert.Equal(t, "Smelter", ingot.Building)
	assert.True(t, ingot.IsUnlocked)
	require.NotNil(t, ingot.Out1)
	assert.Equal(t, 30.0, ingot.Out1.Quantity)
}

func TestCount_EmptyCatalog(t *testing.T) {
	repo := newTestRepository(t)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
