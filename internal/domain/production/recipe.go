package production

// Recipe describes one crafting recipe: which building runs it, what it
// consumes and produces per minute, and catalog metadata. Recipes are
// immutable once loaded from the catalog; planning code clones them
// before attaching them to a group.
type Recipe struct {
	Building         string
	Name             string
	CraftTimeSeconds float64
	IsAlt            bool
	Unlocks          string
	IsUnlocked       bool

	// Up to four inputs and two outputs; absent slots are nil.
	// Quantities are items per minute.
	In1, In2, In3, In4 *Ingredient
	Out1, Out2         *Ingredient
}

// RecipeMap is the recipe catalog keyed by unique recipe name.
type RecipeMap map[string]*Recipe

// Inputs returns the recipe's consumed ingredients in declaration
// order, skipping absent slots.
func (r *Recipe) Inputs() []Ingredient {
	return collect(r.In1, r.In2, r.In3, r.In4)
}

// Outputs returns the recipe's produced ingredients in declaration
// order, skipping absent slots.
func (r *Recipe) Outputs() []Ingredient {
	return collect(r.Out1, r.Out2)
}

// Ingredients returns inputs followed by outputs.
func (r *Recipe) Ingredients() []Ingredient {
	return collect(r.In1, r.In2, r.In3, r.In4, r.Out1, r.Out2)
}

// PerMinuteFactor converts a per-minute quantity back to the amount
// moved in a single craft cycle.
func (r *Recipe) PerMinuteFactor() float64 {
	return r.CraftTimeSeconds / 60.0
}

// MaxTransportRates returns the largest per-minute quantity across all
// inputs and outputs, separately for belt- and pipe-transported
// materials. A zero value means the recipe touches no material of that
// transport kind.
func (r *Recipe) MaxTransportRates() (maxBelt, maxPipe float64) {
	for _, i := range r.Ingredients() {
		switch i.Transport() {
		case TransportPipe:
			if i.Quantity > maxPipe {
				maxPipe = i.Quantity
			}
		default:
			if i.Quantity > maxBelt {
				maxBelt = i.Quantity
			}
		}
	}
	return maxBelt, maxPipe
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.In1 = cloneIngredient(r.In1)
	c.In2 = cloneIngredient(r.In2)
	c.In3 = cloneIngredient(r.In3)
	c.In4 = cloneIngredient(r.In4)
	c.Out1 = cloneIngredient(r.Out1)
	c.Out2 = cloneIngredient(r.Out2)
	return &c
}

func cloneIngredient(i *Ingredient) *Ingredient {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}

func collect(slots ...*Ingredient) []Ingredient {
	out := make([]Ingredient, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
