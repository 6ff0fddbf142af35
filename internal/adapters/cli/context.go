package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrescamacho/satisplan-go/internal/adapters/persistence"
	"github.com/andrescamacho/satisplan-go/internal/application/catalog"
	"github.com/andrescamacho/satisplan-go/internal/domain/production"
	"github.com/andrescamacho/satisplan-go/internal/infrastructure/config"
	"github.com/andrescamacho/satisplan-go/internal/infrastructure/database"
	"github.com/andrescamacho/satisplan-go/internal/infrastructure/logging"
)

// appContext bundles the config and logger every command needs.
type appContext struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newAppContext() (*appContext, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, err
	}

	return &appContext{cfg: cfg, logger: logger}, nil
}

// loadCatalog reads the full recipe catalog from the database and wraps
// it in a resolver.
func (a *appContext) loadCatalog(ctx context.Context) (production.RecipeMap, *catalog.Resolver, error) {
	db, err := database.NewConnection(&a.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	repo := persistence.NewGormRecipeRepository(db)
	recipes, err := repo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(recipes) == 0 {
		return nil, nil, fmt.Errorf("recipe catalog is empty: run \"satisplan catalog import\" first")
	}

	a.logger.Debug("loaded recipe catalog", zap.Int("recipes", len(recipes)))
	return recipes, catalog.NewResolver(recipes), nil
}
