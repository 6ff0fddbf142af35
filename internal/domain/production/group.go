package production

// BalanceEpsilon is the tolerance below which a net flow is reported as
// exactly balanced. The ledger itself always carries full precision;
// the epsilon matters only to reporting.
const BalanceEpsilon = 0.0001

// ScaledRecipe is one allocated recipe instance: the recipe run at a
// real-valued scale factor. The same recipe may appear in a group more
// than once at different scales; entries are never auto-merged.
type ScaledRecipe struct {
	Scale  float64
	Recipe *Recipe
}

// Group is a named planning scope: the materials mined or supplied
// directly into it, the materials claimed as final outputs, and the
// recipes allocated inside it. Inputs and Outputs never hold two
// entries for the same part.
type Group struct {
	Name    string
	Inputs  []Ingredient
	Outputs []Ingredient
	Recipes []ScaledRecipe
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// AddInput merges a directly supplied material into the group.
func (g *Group) AddInput(i Ingredient) {
	g.Inputs = MergeInto(g.Inputs, i)
}

// AddOutput merges a final-consumption material into the group.
func (g *Group) AddOutput(i Ingredient) {
	g.Outputs = MergeInto(g.Outputs, i)
}

// AddRecipe appends a recipe instance at the given scale.
func (g *Group) AddRecipe(scale float64, r *Recipe) {
	g.Recipes = append(g.Recipes, ScaledRecipe{Scale: scale, Recipe: r})
}

// Balances computes the net per-minute flow of every material in the
// group: direct inputs count positive, declared outputs negative, and
// each allocated recipe contributes its outputs (positive) and inputs
// (negative) scaled by its scale factor. The result is recomputed from
// scratch on every call; the ledger is small and recipes may change
// between calls.
func (g *Group) Balances() []Ingredient {
	var b []Ingredient
	for _, i := range g.Inputs {
		b = MergeInto(b, i)
	}
	for _, i := range g.Outputs {
		b = MergeInto(b, i.Neg())
	}
	for _, sr := range g.Recipes {
		for _, o := range sr.Recipe.Outputs() {
			b = MergeInto(b, o.Scale(sr.Scale))
		}
		for _, in := range sr.Recipe.Inputs() {
			b = MergeInto(b, in.Scale(sr.Scale).Neg())
		}
	}
	return b
}

// Abundance returns the balance entries with a reportable surplus.
func (g *Group) Abundance() []Ingredient {
	return filterBalances(g.Balances(), func(q float64) bool { return q >= BalanceEpsilon })
}

// Paucity returns the balance entries with a reportable deficit.
func (g *Group) Paucity() []Ingredient {
	return filterBalances(g.Balances(), func(q float64) bool { return q < -BalanceEpsilon })
}

func filterBalances(b []Ingredient, keep func(float64) bool) []Ingredient {
	var out []Ingredient
	for _, i := range b {
		if keep(i.Quantity) {
			out = append(out, i)
		}
	}
	return out
}
