package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/stellar-homestead/internal/adapters/persistence"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
	"github.com/andrescamacho/stellar-homestead/internal/infrastructure/config"
	"github.com/andrescamacho/stellar-homestead/internal/infrastructure/database"
)

// NewResumeCommand creates the resume command
func NewResumeCommand() *cobra.Command {
	var (
		turns      int
		seed       int64
		scriptPath string
	)

	cmd := &cobra.Command{
		Use:   "resume <run-id>",
		Short: "Resume a saved colony run",
		Long: `Resume a previously saved run from where it left off.

Use 'homestead saves list' to find run IDs.

Example:
  homestead resume 2f7c9c1e-... --turns 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResume(args[0], turns, seed, scriptPath)
		},
	}

	cmd.Flags().IntVar(&turns, "turns", 0, "Maximum number of turns to run (0 = until the run ends)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Event dice seed (0 = time-seeded)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "Path to a decision script (non-interactive)")

	return cmd
}

// runResume loads the persisted run and re-enters the turn loop
func runResume(runID string, turns int, seed int64, scriptPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if seed == 0 {
		seed = cfg.Game.Seed
	}

	runs := persistence.NewGormRunRepository(db)
	engine, err := runs.Load(context.Background(), runID, sim.NewRandRoller(seed))
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}

	if !engine.Running() {
		return fmt.Errorf("run %s already finished at turn %d", runID, engine.Turn())
	}

	return runColony(cfg, engine, turns, scriptPath, runs)
}
