package catalog

import "fmt"

// ErrRecipeNotFound indicates no catalog recipe matched the query.
type ErrRecipeNotFound struct {
	Name string
}

func (e *ErrRecipeNotFound) Error() string {
	return fmt.Sprintf("no such recipe: %s", e.Name)
}

// ErrMaterialNotFound indicates no known material matched the query.
type ErrMaterialNotFound struct {
	Query string
}

func (e *ErrMaterialNotFound) Error() string {
	return fmt.Sprintf("no such material: %s", e.Query)
}

// ErrNotRecipeInput indicates the query matched none of a recipe's
// declared inputs.
type ErrNotRecipeInput struct {
	Query  string
	Recipe string
}

func (e *ErrNotRecipeInput) Error() string {
	return fmt.Sprintf("%s is not an input of recipe %s", e.Query, e.Recipe)
}
