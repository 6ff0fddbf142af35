package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "satisplan",
		Short: "Satisplan - plan Satisfactory production chains",
		Long: `Satisplan computes machine counts, clock speeds and material balances
for Satisfactory production chains.

The recipe catalog is imported once from the community spreadsheet CSV
and stored locally; all planning commands read from that catalog.

Examples:
  satisplan catalog import recipes.csv
  satisplan calc "Iron Plate"
  satisplan recipe show "Caterium Ingot"
  satisplan recipe list --building Refinery
  satisplan chain run steel-factory.chain
  satisplan chain check steel-factory.chain`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewCalcCommand())
	rootCmd.AddCommand(NewChainCommand())
	rootCmd.AddCommand(NewRecipeCommand())
	rootCmd.AddCommand(NewCatalogCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
