package chain

import (
	"fmt"
	"strings"
)

// ParseError is one malformed script line.
type ParseError struct {
	Line   int
	Source string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %s", e.Line, e.Source, e.Reason)
}

// ParseErrors aggregates every parse failure in a script so the caller
// sees all of them at once.
type ParseErrors []*ParseError

func (e ParseErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, pe := range e {
		msgs = append(msgs, pe.Error())
	}
	return fmt.Sprintf("%d parse error(s):\n  %s", len(e), strings.Join(msgs, "\n  "))
}

func errEmptyField(what string) error {
	return fmt.Errorf("missing %s", what)
}

func errBadNumber(what, field string) error {
	return fmt.Errorf("invalid %s %q", what, field)
}

func errMissingInto() error {
	return fmt.Errorf(`expected "<ingredient> into <recipe>"`)
}

func errUnknownDirective(keyword string) error {
	return fmt.Errorf("unknown directive %q", keyword)
}

// ErrNoCurrentGroup indicates an action ran before any group directive.
type ErrNoCurrentGroup struct{}

func (e *ErrNoCurrentGroup) Error() string {
	return "no current group: declare one with \"group <name>\" first"
}

// ErrIngredientNotInBalance indicates an allocation named a material
// with no entry in the current group's balance.
type ErrIngredientNotInBalance struct {
	Part  string
	Group string
}

func (e *ErrIngredientNotInBalance) Error() string {
	return fmt.Sprintf("ingredient %s not found in balance of group %s", e.Part, e.Group)
}

// ErrNonPositiveBalance indicates an allocation from a material whose
// balance carries no surplus.
type ErrNonPositiveBalance struct {
	Part     string
	Quantity float64
}

func (e *ErrNonPositiveBalance) Error() string {
	return fmt.Sprintf("cannot allocate %s from a non-positive balance (%.4f/min)", e.Part, e.Quantity)
}
