package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/stellar-homestead/internal/adapters/persistence"
	"github.com/andrescamacho/stellar-homestead/internal/application/colony/queries"
	"github.com/andrescamacho/stellar-homestead/internal/application/mediator"
	"github.com/andrescamacho/stellar-homestead/internal/infrastructure/config"
	"github.com/andrescamacho/stellar-homestead/internal/infrastructure/database"
)

// NewSavesCommand creates the saves command with subcommands
func NewSavesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saves",
		Short: "Manage saved runs",
		Long: `Inspect the saved runs in the local database.

Example:
  homestead saves list`,
	}

	cmd.AddCommand(newSavesListCommand())

	return cmd
}

// newSavesListCommand creates the saves list subcommand
func newSavesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSavesList()
		},
	}
}

// runSavesList executes the saves list command
func runSavesList() error {
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

	runs := persistence.NewGormRunRepository(db)
	handler := queries.NewListRunsHandler(runs)

	med := mediator.NewMediator()
	if err := mediator.RegisterHandler[*queries.ListRunsQuery](med, handler); err != nil {
		return fmt.Errorf("failed to register ListRuns handler: %w", err)
	}

	result, err := med.Send(context.Background(), &queries.ListRunsQuery{})
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	response := result.(*queries.ListRunsResponse)
	if len(response.Runs) == 0 {
		fmt.Println("No saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tTURN\tPHASE\tRUNNING\tSAVED AT")
	for _, run := range response.Runs {
		fmt.Fprintf(w, "%s\t%d\t%s\t%t\t%s\n",
			run.RunID,
			run.Turn,
			run.Phase,
			run.Running,
			run.SavedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return w.Flush()
}
