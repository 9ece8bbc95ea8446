package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/linecrunch/linecrunch/internal/export"
	"github.com/linecrunch/linecrunch/internal/genetic"
	"github.com/linecrunch/linecrunch/internal/roster"
	"github.com/linecrunch/linecrunch/pkg/config"
	"github.com/linecrunch/linecrunch/pkg/logger"
)

var (
	runSalaries string
	runOutDir   string
	runDuration time.Duration
	runLineups  int
	runSeed     int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the genetic lineup search",
	Long: `Run loads the DraftKings salary sheet, evolves lineups for the
configured duration, and writes the elite pool to CSV. A longer run may find
higher-projection lineups; around 60 seconds is usually plenty.

Flags override the environment configuration. A fixed --seed makes the whole
run reproducible.`,
	RunE: runSearch,
}

func init() {
	runCmd.Flags().StringVar(&runSalaries, "salaries", "", "path to the DKSalaries CSV export")
	runCmd.Flags().StringVar(&runOutDir, "out", "", "directory for the exported CSV files")
	runCmd.Flags().DurationVar(&runDuration, "duration", 0, "wall-clock search budget (e.g. 60s)")
	runCmd.Flags().IntVar(&runLineups, "lineups", 0, "elite pool capacity")
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "random seed (0 seeds from the clock)")
	rootCmd.AddCommand(runCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFlags(cmd, cfg)

	logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runID := uuid.New().String()
	log := logger.WithRunContext(runID, "nhl", "draftkings")

	pools, err := roster.LoadFile(cfg.SalariesPath, log)
	if err != nil {
		return err
	}

	evolver, err := genetic.NewEvolver(pools, genetic.Options{
		Rules:         genetic.Rules{SalaryCap: cfg.SalaryCap, MinTeams: cfg.MinTeams},
		NumLineups:    cfg.NumLineups,
		Duration:      cfg.RunDuration,
		MaxRetries:    cfg.MaxRetries,
		MutationDraws: cfg.MutationDraws,
		Seed:          seed,
	}, log)
	if err != nil {
		return err
	}

	result := evolver.Run()
	if len(result.Lineups) == 0 {
		return fmt.Errorf("search produced no valid lineups after %d generation(s); pools may be too small or too concentrated on one team", result.Generations)
	}

	if err := export.WriteFiles(cfg.OutputDir, result.Lineups, log); err != nil {
		return err
	}

	printSummary(result)
	return nil
}

// applyFlags lets the command line override environment configuration.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("salaries") {
		cfg.SalariesPath = runSalaries
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = runOutDir
	}
	if cmd.Flags().Changed("duration") {
		cfg.RunDuration = runDuration
	}
	if cmd.Flags().Changed("lineups") {
		cfg.NumLineups = runLineups
	}
	if cmd.Flags().Changed("seed") {
		cfg.RandomSeed = runSeed
	}
}

func printSummary(result *genetic.Result) {
	best := result.Lineups[0]
	color.New(color.FgGreen, color.Bold).Printf("✔ %d lineups in %d generations (%.1fs)\n",
		len(result.Lineups), result.Generations, result.Elapsed.Seconds())
	color.New(color.FgCyan).Printf("  best projection %.2f at $%d\n",
		best.ProjectedPoints, best.TotalSalary)
	if result.Exhaustions > 0 {
		color.New(color.FgYellow).Printf("  %d sampling attempt(s) exhausted retries\n", result.Exhaustions)
	}
}
