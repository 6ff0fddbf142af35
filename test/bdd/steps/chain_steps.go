package steps

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/satisplan-go/internal/application/catalog"
	"github.com/andrescamacho/satisplan-go/internal/application/chain"
	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

type chainContext struct {
	recipes  production.RecipeMap
	state    *chain.State
	parseErr error
	runErr   error
}

func (cc *chainContext) reset() {
	cc.recipes = make(production.RecipeMap)
	cc.state = nil
	cc.parseErr = nil
	cc.runErr = nil
}

// aCatalogWithRecipes loads a recipe table: building, name, craft time,
// then input and output pairs as "Part:Qty" cells (empty cell = unused
// slot).
func (cc *chainContext) aCatalogWithRecipes(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		if len(row.Cells) < 5 {
			return fmt.Errorf("recipe row needs at least 5 cells, got %d", len(row.Cells))
		}

		craftTime, err := strconv.ParseFloat(row.Cells[2].Value, 64)
		if err != nil {
			return fmt.Errorf("invalid craft time %q: %w", row.Cells[2].Value, err)
		}

		recipe := &production.Recipe{
			Building:         row.Cells[0].Value,
			Name:             row.Cells[1].Value,
			CraftTimeSeconds: craftTime,
			IsUnlocked:       true,
		}
		if recipe.In1, err = parseIngredientCell(row.Cells[3].Value); err != nil {
			return err
		}
		if recipe.Out1, err = parseIngredientCell(row.Cells[4].Value); err != nil {
			return err
		}
		if len(row.Cells) > 5 {
			if recipe.In2, err = parseIngredientCell(row.Cells[5].Value); err != nil {
				return err
			}
		}

		cc.recipes[recipe.Name] = recipe
	}
	return nil
}

func (cc *chainContext) iRunTheChainScript(script *godog.DocString) error {
	steps, err := chain.ParseScript(script.Content)
	if err != nil {
		cc.parseErr = err
		return nil
	}

	cc.state = chain.NewState(catalog.NewResolver(cc.recipes), nil)
	cc.runErr = cc.state.Run(steps)
	return nil
}

func (cc *chainContext) theScriptShouldRunCleanly() error {
	if cc.parseErr != nil {
		return fmt.Errorf("unexpected parse error: %v", cc.parseErr)
	}
	if cc.runErr != nil {
		return fmt.Errorf("unexpected run error: %v", cc.runErr)
	}
	return nil
}

func (cc *chainContext) parsingShouldFailWith(expected string) error {
	if cc.parseErr == nil {
		return fmt.Errorf("expected parse error containing %q, script parsed", expected)
	}
	if !strings.Contains(cc.parseErr.Error(), expected) {
		return fmt.Errorf("expected parse error containing %q, got %q", expected, cc.parseErr.Error())
	}
	return nil
}

func (cc *chainContext) theRunShouldFailWith(expected string) error {
	if cc.parseErr != nil {
		return fmt.Errorf("script failed parsing instead: %v", cc.parseErr)
	}
	if cc.runErr == nil {
		return fmt.Errorf("expected run error containing %q, run succeeded", expected)
	}
	if !strings.Contains(cc.runErr.Error(), expected) {
		return fmt.Errorf("expected run error containing %q, got %q", expected, cc.runErr.Error())
	}
	return nil
}

func (cc *chainContext) groupShouldHaveBalance(groupName string, quantity float64, part string) error {
	if cc.state == nil {
		return fmt.Errorf("no chain was run")
	}
	for _, g := range cc.state.Groups() {
		if g.Name != groupName {
			continue
		}
		actual := 0.0
		for _, i := range g.Balances() {
			if i.Part == part {
				actual = i.Quantity
				break
			}
		}
		if math.Abs(actual-quantity) > 1e-6 {
			return fmt.Errorf("expected group %s balance of %s to be %v, got %v", groupName, part, quantity, actual)
		}
		return nil
	}
	return fmt.Errorf("no group named %s", groupName)
}

func (cc *chainContext) groupShouldHaveRecipes(groupName string, count int) error {
	if cc.state == nil {
		return fmt.Errorf("no chain was run")
	}
	for _, g := range cc.state.Groups() {
		if g.Name != groupName {
			continue
		}
		if len(g.Recipes) != count {
			return fmt.Errorf("expected %d recipes in group %s, got %d", count, groupName, len(g.Recipes))
		}
		return nil
	}
	return fmt.Errorf("no group named %s", groupName)
}

func (cc *chainContext) thereShouldBeGroupsInOrder(table *godog.Table) error {
	if cc.state == nil {
		return fmt.Errorf("no chain was run")
	}
	groups := cc.state.Groups()
	if len(table.Rows) != len(groups) {
		return fmt.Errorf("expected %d groups, got %d", len(table.Rows), len(groups))
	}
	for i, row := range table.Rows {
		if groups[i].Name != row.Cells[0].Value {
			return fmt.Errorf("expected group %d to be %s, got %s", i, row.Cells[0].Value, groups[i].Name)
		}
	}
	return nil
}

func parseIngredientCell(cell string) (*production.Ingredient, error) {
	if cell == "" {
		return nil, nil
	}
	part, qty, found := strings.Cut(cell, ":")
	if !found {
		return nil, fmt.Errorf("ingredient cell %q must be Part:Qty", cell)
	}
	q, err := strconv.ParseFloat(qty, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ingredient quantity %q: %w", qty, err)
	}
	return &production.Ingredient{Part: part, Quantity: q}, nil
}

// InitializeChainScenario registers the production chain step definitions
func InitializeChainScenario(sc *godog.ScenarioContext) {
	ctx := &chainContext{}

	sc.Before(func(gCtx context.Context, _ *godog.Scenario) (context.Context, error) {
		ctx.reset()
		return gCtx, nil
	})

	sc.Step(`^a catalog with recipes:$`, ctx.aCatalogWithRecipes)
	sc.Step(`^I run the chain script:$`, ctx.iRunTheChainScript)
	sc.Step(`^the script should run cleanly$`, ctx.theScriptShouldRunCleanly)
	sc.Step(`^parsing should fail with "([^"]*)"$`, ctx.parsingShouldFailWith)
	sc.Step(`^the run should fail with "([^"]*)"$`, ctx.theRunShouldFailWith)
	sc.Step(`^group "([^"]*)" should have a balance of (-?[\d.]+) "([^"]*)"$`, ctx.groupShouldHaveBalance)
	sc.Step(`^group "([^"]*)" should have (\d+) recipes?$`, ctx.groupShouldHaveRecipes)
	sc.Step(`^there should be groups in order:$`, ctx.thereShouldBeGroupsInOrder)
}
