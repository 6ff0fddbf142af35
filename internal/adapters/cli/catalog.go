package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrescamacho/satisplan-go/internal/adapters/importer"
	"github.com/andrescamacho/satisplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/satisplan-go/internal/infrastructure/database"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the recipe catalog",
		Long: `Import and inspect the local recipe catalog.

The catalog comes from the community production-recipes spreadsheet:
open the Production Recipes tab, export as CSV, and remove the two
header lines before importing.

Examples:
  satisplan catalog import recipes.csv`,
	}

	cmd.AddCommand(newCatalogImportCommand())

	return cmd
}

func newCatalogImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <csv>",
		Short: "Import the recipe catalog from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogImport(args[0])
		},
	}
}

func runCatalogImport(path string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	recipes, err := importer.ImportFile(path)
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	// Reject duplicate names before touching the database
	if _, err := importer.ToMap(recipes); err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}

	db, err := database.NewConnection(&app.cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := persistence.NewGormRecipeRepository(db)
	if err := repo.ReplaceAll(context.Background(), recipes); err != nil {
		return err
	}

	app.logger.Info("imported recipe catalog",
		zap.String("source", path),
		zap.Int("recipes", len(recipes)))
	fmt.Printf("Imported %d recipes from %s\n", len(recipes), path)
	return nil
}
