package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/satisplan-go/internal/domain/blueprint"
)

// NewCalcCommand creates the calc command
func NewCalcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc <recipe>",
		Short: "Suggest a blueprint for a recipe",
		Long: `Compute a concrete build for one recipe: how many machines fit on the
binding transport line, how many blueprint boxes of the preferred
machine multiple to place, the clock speed that preserves throughput at
that integral machine count, and the resulting power draw.

Recipe names are matched case-insensitively, with fuzzy fallback for
near-misses.

Examples:
  satisplan calc "Iron Plate"
  satisplan calc screw`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(strings.Join(args, " "))
		},
	}
	return cmd
}

func runCalc(recipeName string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	ctx := context.Background()
	_, resolver, err := app.loadCatalog(ctx)
	if err != nil {
		return err
	}

	recipe, err := resolver.FindRecipe(recipeName)
	if err != nil {
		return err
	}

	suggestion, err := blueprint.Suggest(recipe, app.cfg.Factory.Constants())
	if err != nil {
		return err
	}

	displayBlueprint(recipe, suggestion)
	return nil
}
