package chain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

// Catalog resolves user-supplied names to catalog entries. Exact
// matching is preferred; any fuzzy matching happens behind this
// boundary before an ingredient reaches the ledger.
type Catalog interface {
	FindRecipe(name string) (*production.Recipe, error)
	FindIngredientName(query string) (string, error)
	FindIngredientInRecipe(r *production.Recipe, query string) (production.Ingredient, error)
}

// State folds chain actions over a set of named groups. It is owned by
// a single chain-script run; actions apply strictly in script order and
// the first execution failure is terminal.
type State struct {
	catalog Catalog
	logger  *zap.Logger

	groups  map[string]*production.Group
	order   []string
	current string
}

// NewState creates an empty interpreter state. The current group starts
// unset; every non-group action requires one.
func NewState(catalog Catalog, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{
		catalog: catalog,
		logger:  logger,
		groups:  make(map[string]*production.Group),
	}
}

// Groups returns the groups in declaration order.
func (s *State) Groups() []*production.Group {
	out := make([]*production.Group, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.groups[name])
	}
	return out
}

// SetOrMakeGroup creates the group if absent and makes it current.
// Re-declaring an existing group does not reset it.
func (s *State) SetOrMakeGroup(name string) *production.Group {
	g, ok := s.groups[name]
	if !ok {
		g = production.NewGroup(name)
		s.groups[name] = g
		s.order = append(s.order, name)
	}
	s.current = name
	return g
}

// CurrentGroup returns the group targeted by non-group actions.
func (s *State) CurrentGroup() (*production.Group, error) {
	if s.current == "" {
		return nil, &ErrNoCurrentGroup{}
	}
	return s.groups[s.current], nil
}

// Run applies parsed steps in order. The returned error names the
// script line that failed.
func (s *State) Run(steps []Step) error {
	for _, step := range steps {
		if err := s.Apply(step.Action); err != nil {
			return fmt.Errorf("line %d: %q: %w", step.Line, step.Source, err)
		}
	}
	return nil
}

// Apply executes a single action.
func (s *State) Apply(a Action) error {
	switch act := a.(type) {
	case Comment:
		return nil

	case SelectGroup:
		s.SetOrMakeGroup(act.Name)
		s.logger.Debug("selected group", zap.String("group", act.Name))
		return nil

	case Mine:
		return s.mine(act.Quantity, act.Ingredient)

	case AllInto:
		return s.allocate(1.0, act.Ingredient, act.Recipe)

	case UseInto:
		return s.allocate(act.Fraction, act.Ingredient, act.Recipe)

	default:
		return fmt.Errorf("unknown action %T", a)
	}
}

func (s *State) mine(quantity float64, query string) error {
	g, err := s.CurrentGroup()
	if err != nil {
		return err
	}
	part, err := s.catalog.FindIngredientName(query)
	if err != nil {
		return err
	}
	g.AddInput(production.Ingredient{Part: part, Quantity: quantity})
	s.logger.Debug("mined ingredient",
		zap.String("group", g.Name),
		zap.String("part", part),
		zap.Float64("quantity", quantity))
	return nil
}

// allocate appends the recipe to the current group at the scale that
// consumes the given fraction of the named ingredient's current
// surplus. This ratio is the central allocation invariant: run at that
// scale, the recipe eats exactly fraction * balance of the ingredient.
func (s *State) allocate(fraction float64, ingredientQuery, recipeQuery string) error {
	g, err := s.CurrentGroup()
	if err != nil {
		return err
	}
	recipe, err := s.catalog.FindRecipe(recipeQuery)
	if err != nil {
		return err
	}
	input, err := s.catalog.FindIngredientInRecipe(recipe, ingredientQuery)
	if err != nil {
		return err
	}

	var available *production.Ingredient
	for _, b := range g.Balances() {
		if b.Part == input.Part {
			available = &b
			break
		}
	}
	if available == nil {
		return &ErrIngredientNotInBalance{Part: input.Part, Group: g.Name}
	}
	if available.Quantity <= 0 {
		return &ErrNonPositiveBalance{Part: input.Part, Quantity: available.Quantity}
	}

	ratio := (available.Quantity * fraction) / input.Quantity
	g.AddRecipe(ratio, recipe.Clone())
	s.logger.Debug("allocated recipe",
		zap.String("group", g.Name),
		zap.String("recipe", recipe.Name),
		zap.String("part", input.Part),
		zap.Float64("fraction", fraction),
		zap.Float64("scale", ratio))
	return nil
}
