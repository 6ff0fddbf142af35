package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/satisplan-go/internal/domain/blueprint"
	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

type blueprintContext struct {
	constants  blueprint.Constants
	recipe     *production.Recipe
	suggestion *blueprint.Suggestion
	err        error
}

func (bc *blueprintContext) reset() {
	bc.constants = blueprint.Constants{
		BeltItemsPerMinute: 480,
		PipeItemsPerMinute: 600,
		PreferredMultiples: map[string]float64{
			"Constructor":  2,
			"Assembler":    3,
			"Manufacturer": 2,
			"Refinery":     4,
			"Foundry":      3,
			"Packager":     4,
		},
	}
	bc.recipe = nil
	bc.suggestion = nil
	bc.err = nil
}

func (bc *blueprintContext) beltCapacityIs(rate float64) error {
	bc.constants.BeltItemsPerMinute = rate
	return nil
}

func (bc *blueprintContext) pipeCapacityIs(rate float64) error {
	bc.constants.PipeItemsPerMinute = rate
	return nil
}

// aRecipeWith loads a recipe table: building, name, then input and
// output pairs as "Part:Qty" cells.
func (bc *blueprintContext) aRecipeWith(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		if len(row.Cells) < 4 {
			return fmt.Errorf("recipe row needs at least 4 cells, got %d", len(row.Cells))
		}

		recipe := &production.Recipe{
			Building:   row.Cells[0].Value,
			Name:       row.Cells[1].Value,
			IsUnlocked: true,
		}
		var err error
		if recipe.In1, err = parseIngredientCell(row.Cells[2].Value); err != nil {
			return err
		}
		if recipe.Out1, err = parseIngredientCell(row.Cells[3].Value); err != nil {
			return err
		}
		if len(row.Cells) > 4 {
			if recipe.In2, err = parseIngredientCell(row.Cells[4].Value); err != nil {
				return err
			}
		}
		bc.recipe = recipe
	}
	return nil
}

func (bc *blueprintContext) iSizeABlueprint() error {
	bc.suggestion, bc.err = blueprint.Suggest(bc.recipe, bc.constants)
	return nil
}

func (bc *blueprintContext) sizingShouldFailWith(expected string) error {
	if bc.err == nil {
		return fmt.Errorf("expected sizing error containing %q, sizing succeeded", expected)
	}
	if !strings.Contains(bc.err.Error(), expected) {
		return fmt.Errorf("expected sizing error containing %q, got %q", expected, bc.err.Error())
	}
	return nil
}

func (bc *blueprintContext) theSuggestionShouldHave(table *godog.Table) error {
	if bc.err != nil {
		return fmt.Errorf("sizing failed: %v", bc.err)
	}

	for _, row := range table.Rows {
		field, want := row.Cells[0].Value, row.Cells[1].Value
		var actual float64
		switch field {
		case "boxes":
			actual = bc.suggestion.Boxes
		case "clock":
			actual = bc.suggestion.Clock
		case "machines":
			actual = bc.suggestion.Machines()
		case "machines per belt":
			actual = bc.suggestion.MachinesPerBelt
		case "machines per pipe":
			actual = bc.suggestion.MachinesPerPipe
		case "power MW":
			actual = bc.suggestion.PowerUsageMW
		default:
			return fmt.Errorf("unknown suggestion field %q", field)
		}

		expected, err := strconv.ParseFloat(want, 64)
		if err != nil {
			return fmt.Errorf("invalid expected value %q: %w", want, err)
		}
		if math.Abs(actual-expected) > 1e-4 {
			return fmt.Errorf("expected %s to be %v, got %v", field, expected, actual)
		}
	}
	return nil
}

func (bc *blueprintContext) theSuggestionShouldUseTransports(belt, pipe string) error {
	if bc.err != nil {
		return fmt.Errorf("sizing failed: %v", bc.err)
	}
	if bc.suggestion.UseBelt != (belt == "belt") {
		return fmt.Errorf("expected UseBelt=%v, got %v", belt == "belt", bc.suggestion.UseBelt)
	}
	if bc.suggestion.UsePipe != (pipe == "pipe") {
		return fmt.Errorf("expected UsePipe=%v, got %v", pipe == "pipe", bc.suggestion.UsePipe)
	}
	return nil
}

// InitializeBlueprintScenario registers the blueprint sizing step definitions
func InitializeBlueprintScenario(sc *godog.ScenarioContext) {
	ctx := &blueprintContext{}

	sc.Before(func(gCtx context.Context, _ *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return gCtx, nil
	})

	sc.Step(`^the belt capacity is ([\d.]+) items per minute$`, ctx.beltCapacityIs)
	sc.Step(`^the pipe capacity is ([\d.]+) items per minute$`, ctx.pipeCapacityIs)
	sc.Step(`^a recipe with:$`, ctx.aRecipeWith)
	sc.Step(`^I size a blueprint$`, ctx.iSizeABlueprint)
	sc.Step(`^sizing should fail with "([^"]*)"$`, ctx.sizingShouldFailWith)
	sc.Step(`^the suggestion should have:$`, ctx.theSuggestionShouldHave)
	sc.Step(`^the suggestion should use (belt|no belt) and (pipe|no pipe)$`, ctx.theSuggestionShouldUseTransports)
}
