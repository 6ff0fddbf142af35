package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

// GormRecipeRepository stores the recipe catalog using GORM
type GormRecipeRepository struct {
	db *gorm.DB
}

// NewGormRecipeRepository creates a new GORM recipe repository
func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// ReplaceAll replaces the stored catalog with the given recipes in a
// single transaction. Used by catalog import.
func (r *GormRecipeRepository) ReplaceAll(ctx context.Context, recipes []*production.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&RecipeModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}
		for _, recipe := range recipes {
			model := recipeToModel(recipe)
			if err := tx.Create(model).Error; err != nil {
				return fmt.Errorf("failed to store recipe %s: %w", recipe.Name, err)
			}
		}
		return nil
	})
}

// FindByName retrieves a recipe by its unique name
func (r *GormRecipeRepository) FindByName(ctx context.Context, name string) (*production.Recipe, error) {
	var model RecipeModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("recipe not found: %s", name)
		}
		return nil, fmt.Errorf("failed to find recipe: %w", result.Error)
	}
	return modelToRecipe(&model), nil
}

// ListAll loads the whole catalog as the name-keyed map the planning
// core consumes
func (r *GormRecipeRepository) ListAll(ctx context.Context) (production.RecipeMap, error) {
	var models []RecipeModel
	result := r.db.WithContext(ctx).Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", result.Error)
	}

	recipes := make(production.RecipeMap, len(models))
	for n := range models {
		recipe := modelToRecipe(&models[n])
		recipes[recipe.Name] = recipe
	}
	return recipes, nil
}

// Count returns the number of stored recipes
func (r *GormRecipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

func recipeToModel(recipe *production.Recipe) *RecipeModel {
	model := &RecipeModel{
		Building:         recipe.Building,
		Name:             recipe.Name,
		CraftTimeSeconds: recipe.CraftTimeSeconds,
		IsAlt:            recipe.IsAlt,
		Unlocks:          recipe.Unlocks,
		IsUnlocked:       recipe.IsUnlocked,
	}
	model.In1Part, model.In1Qty = ingredientToColumns(recipe.In1)
	model.In2Part, model.In2Qty = ingredientToColumns(recipe.In2)
	model.In3Part, model.In3Qty = ingredientToColumns(recipe.In3)
	model.In4Part, model.In4Qty = ingredientToColumns(recipe.In4)
	model.Out1Part, model.Out1Qty = ingredientToColumns(recipe.Out1)
	model.Out2Part, model.Out2Qty = ingredientToColumns(recipe.Out2)
	return model
}

func modelToRecipe(model *RecipeModel) *production.Recipe {
	return &production.Recipe{
		Building:         model.Building,
		Name:             model.Name,
		CraftTimeSeconds: model.CraftTimeSeconds,
		IsAlt:            model.IsAlt,
		Unlocks:          model.Unlocks,
		IsUnlocked:       model.IsUnlocked,
		In1:              columnsToIngredient(model.In1Part, model.In1Qty),
		In2:              columnsToIngredient(model.In2Part, model.In2Qty),
		In3:              columnsToIngredient(model.In3Part, model.In3Qty),
		In4:              columnsToIngredient(model.In4Part, model.In4Qty),
		Out1:             columnsToIngredient(model.Out1Part, model.Out1Qty),
		Out2:             columnsToIngredient(model.Out2Part, model.Out2Qty),
	}
}

func ingredientToColumns(i *production.Ingredient) (*string, *float64) {
	if i == nil {
		return nil, nil
	}
	part, qty := i.Part, i.Quantity
	return &part, &qty
}

func columnsToIngredient(part *string, qty *float64) *production.Ingredient {
	if part == nil || qty == nil {
		return nil
	}
	return &production.Ingredient{Part: *part, Quantity: *qty}
}
