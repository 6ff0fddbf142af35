// Package catalog resolves user-supplied names against the recipe
// catalog. Resolution is exact-match first (case-insensitive), with a
// bounded Levenshtein fallback for near-misses. Fuzzy matching is
// best-effort and stops at this boundary: the planning core only ever
// sees canonical names.
package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

// maxFuzzyDistance is the largest edit distance accepted by the fuzzy
// fallback.
const maxFuzzyDistance = 3

// Resolver resolves recipe and material names over a fixed catalog.
type Resolver struct {
	recipes production.RecipeMap

	// Sorted so fuzzy ties resolve deterministically.
	recipeNames   []string
	materialNames []string
}

// NewResolver indexes the catalog's recipe names and every material
// name appearing in any recipe.
func NewResolver(recipes production.RecipeMap) *Resolver {
	materials := make(map[string]bool)
	recipeNames := make([]string, 0, len(recipes))
	for name, r := range recipes {
		recipeNames = append(recipeNames, name)
		for _, i := range r.Ingredients() {
			materials[i.Part] = true
		}
	}
	materialNames := make([]string, 0, len(materials))
	for m := range materials {
		materialNames = append(materialNames, m)
	}
	sort.Strings(recipeNames)
	sort.Strings(materialNames)

	return &Resolver{
		recipes:       recipes,
		recipeNames:   recipeNames,
		materialNames: materialNames,
	}
}

// FindRecipe resolves a recipe name to its catalog entry.
func (r *Resolver) FindRecipe(name string) (*production.Recipe, error) {
	key, ok := bestMatch(name, r.recipeNames)
	if !ok {
		return nil, &ErrRecipeNotFound{Name: name}
	}
	return r.recipes[key], nil
}

// FindIngredientName resolves free text to a canonical material name.
func (r *Resolver) FindIngredientName(query string) (string, error) {
	name, ok := bestMatch(query, r.materialNames)
	if !ok {
		return "", &ErrMaterialNotFound{Query: query}
	}
	return name, nil
}

// FindIngredientInRecipe resolves free text to one of the recipe's
// declared inputs.
func (r *Resolver) FindIngredientInRecipe(rec *production.Recipe, query string) (production.Ingredient, error) {
	inputs := rec.Inputs()
	names := make([]string, len(inputs))
	for n, i := range inputs {
		names[n] = i.Part
	}
	name, ok := bestMatch(query, names)
	if !ok {
		return production.Ingredient{}, &ErrNotRecipeInput{Query: query, Recipe: rec.Name}
	}
	for _, i := range inputs {
		if i.Part == name {
			return i, nil
		}
	}
	return production.Ingredient{}, &ErrNotRecipeInput{Query: query, Recipe: rec.Name}
}

// bestMatch returns the candidate equal to the query ignoring case, or
// failing that the candidate at minimal edit distance within the fuzzy
// cutoff. Candidates must be sorted; the first minimal candidate wins.
func bestMatch(query string, candidates []string) (string, bool) {
	q := strings.ToLower(query)
	for _, c := range candidates {
		if strings.ToLower(c) == q {
			return c, true
		}
	}

	best := ""
	bestDist := maxFuzzyDistance + 1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(q, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist > maxFuzzyDistance {
		return "", false
	}
	return best, true
}
