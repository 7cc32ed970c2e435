package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/andrescamacho/stellar-homestead/internal/adapters/metrics"
	"github.com/andrescamacho/stellar-homestead/internal/adapters/persistence"
	"github.com/andrescamacho/stellar-homestead/internal/application/colony/commands"
	"github.com/andrescamacho/stellar-homestead/internal/application/colony/queries"
	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/domain/sim"
	"github.com/andrescamacho/stellar-homestead/internal/infrastructure/config"
	"github.com/andrescamacho/stellar-homestead/internal/infrastructure/database"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	var (
		turns      int
		seed       int64
		scriptPath string
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start a new colony run",
		Long: `Start a new colony run with the founding roster and structures.

Each turn cycles through production, a random event and a management phase.
By default the management phase is interactive; pass --script to replay a
decision file instead.

Examples:
  homestead run
  homestead run --turns 10 --seed 42
  homestead run --script decisions.txt --no-save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNewColony(turns, seed, scriptPath, noSave)
		},
	}

	cmd.Flags().IntVar(&turns, "turns", 0, "Maximum number of turns to run (0 = until the run ends)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Event dice seed (0 = time-seeded)")
	cmd.Flags().StringVar(&scriptPath, "script", "", "Path to a decision script (non-interactive)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Disable persistence for this run")

	return cmd
}

// runNewColony wires a fresh engine and drives it through the turn loop
func runNewColony(turns int, seed int64, scriptPath string, noSave bool) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if seed == 0 {
		seed = cfg.Game.Seed
	}

	engine := sim.NewEngine(sim.NewRandRoller(seed))

	var runs sim.RunRepository
	if !noSave {
		db, err := database.NewConnection(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close(db)

		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		runs = persistence.NewGormRunRepository(db)
	}

	return runColony(cfg, engine, turns, scriptPath, runs)
}

// runColony is the shared turn loop behind run and resume. runs may be nil
// when persistence is disabled.
func runColony(cfg *config.Config, engine *sim.Engine, turns int, scriptPath string, runs sim.RunRepository) error {
	if cfg.Metrics.Enabled {
		startMetricsServer(&cfg.Metrics)
	}

	med, err := newColonyMediator(engine, runs, cfg.Game.AutoSave)
	if err != nil {
		return err
	}

	driver, err := newDriver(scriptPath, med, runs != nil)
	if err != nil {
		return err
	}

	ctx := context.Background()
	out := os.Stdout

	fmt.Fprintf(out, "Stellar Homestead - run %s (difficulty: %s)\n", engine.RunID(), cfg.Game.Difficulty)
	displaySnapshot(out, engine.Snapshot())

	for cycles := 0; engine.Running(); cycles++ {
		if turns > 0 && cycles >= turns {
			break
		}

		result, err := med.Send(ctx, &commands.AdvanceCycleCommand{Driver: driver})
		if err != nil {
			return fmt.Errorf("cycle failed: %w", err)
		}

		response := result.(*commands.AdvanceCycleResponse)
		displayCycleReport(out, response.Report)
		displaySnapshot(out, response.Snapshot)

		if response.Report.Terminal {
			displayOutcome(out, response.Report)
			break
		}
	}

	if runs != nil && !cfg.Game.AutoSave {
		if _, err := med.Send(ctx, &commands.SaveRunCommand{}); err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Fprintf(out, "Run saved as %s\n", engine.RunID())
	}

	return nil
}

// newColonyMediator registers every colony handler against one engine
func newColonyMediator(engine *sim.Engine, runs sim.RunRepository, autoSave bool) (mediator.Mediator, error) {
	med := mediator.NewMediator()

	if verbose {
		med.RegisterMiddleware(loggingMiddleware)
	}

	advanceHandler := commands.NewAdvanceCycleHandler(engine, runs, autoSave)
	if err := mediator.RegisterHandler[*commands.AdvanceCycleCommand](med, advanceHandler); err != nil {
		return nil, fmt.Errorf("failed to register AdvanceCycle handler: %w", err)
	}

	buildHandler := commands.NewBuildStructureHandler(engine)
	if err := mediator.RegisterHandler[*commands.BuildStructureCommand](med, buildHandler); err != nil {
		return nil, fmt.Errorf("failed to register BuildStructure handler: %w", err)
	}

	assignHandler := commands.NewAssignColonistHandler(engine)
	if err := mediator.RegisterHandler[*commands.AssignColonistCommand](med, assignHandler); err != nil {
		return nil, fmt.Errorf("failed to register AssignColonist handler: %w", err)
	}

	upgradeHandler := commands.NewUpgradeBuildingHandler(engine)
	if err := mediator.RegisterHandler[*commands.UpgradeBuildingCommand](med, upgradeHandler); err != nil {
		return nil, fmt.Errorf("failed to register UpgradeBuilding handler: %w", err)
	}

	restHandler := commands.NewRestColonistsHandler(engine)
	if err := mediator.RegisterHandler[*commands.RestColonistsCommand](med, restHandler); err != nil {
		return nil, fmt.Errorf("failed to register RestColonists handler: %w", err)
	}

	saveHandler := commands.NewSaveRunHandler(engine, runs)
	if err := mediator.RegisterHandler[*commands.SaveRunCommand](med, saveHandler); err != nil {
		return nil, fmt.Errorf("failed to register SaveRun handler: %w", err)
	}

	statusHandler := queries.NewGetColonyStatusHandler(engine)
	if err := mediator.RegisterHandler[*queries.GetColonyStatusQuery](med, statusHandler); err != nil {
		return nil, fmt.Errorf("failed to register GetColonyStatus handler: %w", err)
	}

	return med, nil
}

// newDriver picks the management driver: a decision script when given,
// otherwise the interactive menu on stdin.
func newDriver(scriptPath string, med mediator.Mediator, canSave bool) (sim.Driver, error) {
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()

		cmds, err := ParseScript(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse script: %w", err)
		}
		return sim.NewScriptedDriver(cmds), nil
	}

	var save func() error
	if canSave {
		save = func() error {
			_, err := med.Send(context.Background(), &commands.SaveRunCommand{})
			return err
		}
	}
	return NewInteractiveDriver(os.Stdin, os.Stdout, save), nil
}

// loggingMiddleware traces dispatched requests when --verbose is set
func loggingMiddleware(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
	start := time.Now()
	response, err := next(ctx, request)
	if err != nil {
		log.Printf("%T failed after %s: %v", request, time.Since(start), err)
	} else {
		log.Printf("%T handled in %s", request, time.Since(start))
	}
	return response, err
}

// startMetricsServer exposes the Prometheus endpoint in the background
func startMetricsServer(cfg *config.MetricsConfig) {
	metrics.InitRegistry()
	metrics.SetGlobalCollector(metrics.NewSimMetricsCollector())

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	go func() {
		if err := http.ListenAndServe(cfg.Address(), mux); err != nil {
			log.Printf("metrics server stopped: %v", err)
		}
	}()
}
