package chain

// Action is one parsed chain-script directive. The action set is
// closed: one variant per grammar rule.
type Action interface {
	isAction()
}

// Comment has no effect on execution.
type Comment struct {
	Text string
}

// SelectGroup creates the named group if absent and makes it the
// target of subsequent actions.
type SelectGroup struct {
	Name string
}

// Mine supplies a quantity of a material directly into the current
// group's inputs. The ingredient name is resolved against the catalog
// at execution time.
type Mine struct {
	Quantity   float64
	Ingredient string
}

// AllInto allocates a recipe at the scale that consumes the entire
// current surplus of the named ingredient.
type AllInto struct {
	Ingredient string
	Recipe     string
}

// UseInto allocates a recipe at the scale that consumes the given
// fraction of the current surplus of the named ingredient. The
// fraction is typically in [0, 1] but is not range-checked.
type UseInto struct {
	Fraction   float64
	Ingredient string
	Recipe     string
}

func (Comment) isAction()     {}
func (SelectGroup) isAction() {}
func (Mine) isAction()        {}
func (AllInto) isAction()     {}
func (UseInto) isAction()     {}

// Step pairs an action with the script line it came from so execution
// failures can name their source.
type Step struct {
	Line   int
	Source string
	Action Action
}
