package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/andrescamacho/satisplan-go/internal/application/chain"
)

// NewChainCommand creates the chain command with subcommands
func NewChainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Run production chain scripts",
		Long: `Execute or check a production chain script.

A chain script is a line-oriented plan: declare a group, mine raw
materials into it, then allocate recipes against the running balance.

  # steel, phase 1
  group Steel
  mine 240 Iron Ore
  all Iron Ore into Iron Ingot
  use 0.5 Iron Ingot into Steel Beam

Scripts are parsed strictly: if any line is malformed, every parse
error is reported and nothing executes.

Examples:
  satisplan chain run steel-factory.chain
  satisplan chain check steel-factory.chain`,
	}

	cmd.AddCommand(newChainRunCommand())
	cmd.AddCommand(newChainCheckCommand())

	return cmd
}

func newChainRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Execute a chain script and report group balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChain(args[0])
		},
	}
}

func newChainCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Parse a chain script without executing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkChain(args[0])
		},
	}
}

func runChain(path string) error {
	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.logger.Sync()

	steps, err := parseChainFile(path)
	if err != nil {
		return err
	}

	ctx := context.Background()
	_, resolver, err := app.loadCatalog(ctx)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	logger := app.logger.With(zap.String("run_id", runID), zap.String("script", path))
	logger.Info("executing chain script", zap.Int("actions", len(steps)))

	start := time.Now()
	state := chain.NewState(resolver, logger)
	if err := state.Run(steps); err != nil {
		return fmt.Errorf("chain execution failed: %w", err)
	}

	displayChain(state.Groups())
	logger.Info("chain script complete",
		zap.Int("groups", len(state.Groups())),
		zap.Duration("took", time.Since(start)))
	return nil
}

func checkChain(path string) error {
	steps, err := parseChainFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: OK (%d actions)\n", path, len(steps))
	return nil
}

func parseChainFile(path string) ([]chain.Step, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain script: %w", err)
	}
	steps, err := chain.ParseScript(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return steps, nil
}
