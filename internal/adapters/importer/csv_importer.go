// Package importer loads the recipe catalog from the community
// production-recipes spreadsheet exported as CSV (Production Recipes
// tab, header lines removed). Each row carries the building, recipe
// name, craft time, unlock metadata, four input part/quantity pairs and
// two output pairs.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

// recordFields is the column count of a spreadsheet row.
const recordFields = 18

// ImportFile reads a catalog CSV from disk, applies the known data
// patches and appends the custom recipes.
func ImportFile(path string) ([]*production.Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	recipes, err := Import(f)
	if err != nil {
		return nil, err
	}
	if err := ApplyPatches(recipes); err != nil {
		return nil, err
	}
	return append(recipes, CustomRecipes()...), nil
}

// Import parses catalog rows from a reader. Rows with an empty first
// field are skipped (the spreadsheet pads its export with them).
func Import(r io.Reader) ([]*production.Recipe, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var recipes []*production.Recipe
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog record: %w", err)
		}
		recipe, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %v: %w", record, err)
		}
		if recipe != nil {
			recipes = append(recipes, recipe)
		}
	}
	return recipes, nil
}

// ToMap keys recipes by name. Duplicate names are an import error.
func ToMap(recipes []*production.Recipe) (production.RecipeMap, error) {
	m := make(production.RecipeMap, len(recipes))
	for _, r := range recipes {
		if _, exists := m[r.Name]; exists {
			return nil, fmt.Errorf("duplicate recipe name: %s", r.Name)
		}
		m[r.Name] = r
	}
	return m, nil
}

// ApplyPatches corrects known bad rows in the spreadsheet data.
// Diamonds -> Time Crystals should be a 10s 2:1 ratio.
func ApplyPatches(recipes []*production.Recipe) error {
	tc := recipeByName(recipes, "Time Crystal")
	if tc == nil || tc.In1 == nil {
		return fmt.Errorf("could not apply patch to Time Crystal recipe")
	}
	tc.In1.Quantity = 12.0
	return nil
}

// CustomRecipes returns recipes absent from the spreadsheet.
func CustomRecipes() []*production.Recipe {
	return []*production.Recipe{
		{
			Building:         "Nuclear Power Plant",
			Name:             "Burn Uranium",
			CraftTimeSeconds: 300,
			IsUnlocked:       true,
			In1:              &production.Ingredient{Part: "Uranium Fuel Rod", Quantity: 0.2},
			In2:              &production.Ingredient{Part: "Water", Quantity: 240},
			Out1:             &production.Ingredient{Part: "Uranium Waste", Quantity: 10},
		},
	}
}

func recipeByName(recipes []*production.Recipe, name string) *production.Recipe {
	for _, r := range recipes {
		if r.Name == name {
			return r
		}
	}
	return nil
}

func parseRecord(record []string) (*production.Recipe, error) {
	if len(record) < recordFields {
		return nil, fmt.Errorf("expected %d fields, got %d", recordFields, len(record))
	}
	if record[0] == "" {
		return nil, nil
	}

	craftTime, err := strconv.ParseFloat(record[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid craft time %q: %w", record[2], err)
	}

	recipe := &production.Recipe{
		Building:         record[0],
		Name:             record[1],
		CraftTimeSeconds: craftTime,
		IsAlt:            record[3] == "TRUE",
		Unlocks:          record[4],
		IsUnlocked:       record[5] == "TRUE",
	}

	slots := []**production.Ingredient{
		&recipe.In1, &recipe.In2, &recipe.In3, &recipe.In4,
		&recipe.Out1, &recipe.Out2,
	}
	for n, slot := range slots {
		part, qty := record[6+2*n], record[7+2*n]
		ing, err := parseIngredient(part, qty)
		if err != nil {
			return nil, err
		}
		*slot = ing
	}
	return recipe, nil
}

func parseIngredient(part, quantity string) (*production.Ingredient, error) {
	if part == "" || quantity == "" {
		return nil, nil
	}
	q, err := strconv.ParseFloat(quantity, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q for %s: %w", quantity, part, err)
	}
	return &production.Ingredient{Part: part, Quantity: q}, nil
}
