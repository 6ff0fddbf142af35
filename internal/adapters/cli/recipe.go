package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/satisplan-go/internal/domain/production"
)

// NewRecipeCommand creates the recipe command with subcommands
func NewRecipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Inspect the recipe catalog",
		Long: `Look up recipes in the imported catalog.

Examples:
  satisplan recipe show "Iron Ingot"
  satisplan recipe list
  satisplan recipe list --building Assembler --alt`,
	}

	cmd.AddCommand(newRecipeShowCommand())
	cmd.AddCommand(newRecipeListCommand())

	return cmd
}

func newRecipeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <recipe>",
		Short: "Show one recipe's inputs and outputs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecipeShow(strings.Join(args, " "))
		},
	}
}

func newRecipeListCommand() *cobra.Command {
	var (
		building string
		altOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecipeList(building, altOnly)
		},
	}

	cmd.Flags().StringVar(&building, "building", "", "Filter by building type")
	cmd.Flags().BoolVar(&altOnly, "alt", false, "Show only alternate recipes")

	return cmd
}

func runRecipeShow(name string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	_, resolver, err := app.loadCatalog(context.Background())
	if err != nil {
		return err
	}

	recipe, err := resolver.FindRecipe(name)
	if err != nil {
		return err
	}

	displayRecipe(recipe)
	return nil
}

func runRecipeList(building string, altOnly bool) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	recipes, _, err := app.loadCatalog(context.Background())
	if err != nil {
		return err
	}

	names := make([]string, 0, len(recipes))
	for name, r := range recipes {
		if building != "" && !strings.EqualFold(r.Building, building) {
			continue
		}
		if altOnly && !r.IsAlt {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	if len(names) == 0 {
		fmt.Println("No matching recipes")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Recipe\tBuilding\tCycle\tAlt\tUnlocked")
	fmt.Fprintln(w, "──────\t────────\t─────\t───\t────────")
	for _, name := range names {
		r := recipes[name]
		fmt.Fprintf(w, "%s\t%s\t%.0fs\t%s\t%s\n",
			r.Name, r.Building, r.CraftTimeSeconds, yesNo(r.IsAlt), yesNo(r.IsUnlocked))
	}
	w.Flush()
	fmt.Printf("Total: %d recipes\n", len(names))
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func displayRecipe(r *production.Recipe) {
	fmt.Println(r.Name)
	fmt.Printf("  Building: %s\n", r.Building)
	fmt.Printf("  Cycle time: %gs\n", r.CraftTimeSeconds)
	if r.IsAlt {
		fmt.Printf("  Alternate recipe (unlocks: %s)\n", r.Unlocks)
	}
	fmt.Println()
	fmt.Println("Out:")
	for _, i := range r.Outputs() {
		printIngredient(i)
	}
	fmt.Println("In:")
	for _, i := range r.Inputs() {
		printIngredient(i)
	}
}
