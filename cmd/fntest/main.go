// Package main provides the CLI entry point for fntest, which runs the
// bundled differential self-check suites.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/weiihann/fntest/config"
	"github.com/weiihann/fntest/report"
	"github.com/weiihann/fntest/suites"
	"github.com/weiihann/fntest/verbosity"
)

// errSuitesFailed marks a run that completed with failing suites.
var errSuitesFailed = errors.New("suites failed")

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})).With(slog.String("run_id", newRunID()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	root := newRootCmd(logger, level, os.Stdout)
	err := root.ExecuteContext(ctx)

	stop()
	os.Exit(exitCode(os.Stderr, err))
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// exitCode maps the result of a command to the process exit status: 0 on
// success, 1 when suites failed and 2 on any other error.
func exitCode(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errSuitesFailed):
		return 1
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar, stdout io.Writer) *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "fntest",
		Short: "Differential function testing harness",
		Long: `fntest pins candidate functions with deterministic cases and compares
them against reference implementations on seeded randomized arguments,
reporting divergences and timings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("parse log level: %w", err)
			}

			return nil
		},
	}

	root.SetOut(stdout)
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Log level on stderr: debug, info, warn, error")

	root.AddCommand(newRunCmd(logger), newListCmd())

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		configPath   string
		suiteNames   []string
		trials       int
		seed         int64
		level        = verbosity.Normal
		lineLength   int
		fnLineLength int
		color        string
		distribution string
		minSize      int
		maxSize      int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run self-check suites",
		Long: `Run the selected suites. Each suite pins its candidate with deterministic
cases, then compares it against a reference on generated arguments.

Settings are read from --config (TOML or YAML), then FNTEST_TRIALS,
FNTEST_SEED, FNTEST_VERBOSITY and FNTEST_COLOR, then flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("suites") {
				cfg.Suites = suiteNames
			}
			if flags.Changed("trials") {
				cfg.Trials = trials
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("verbosity") {
				cfg.Verbosity = level
			}
			if flags.Changed("line-length") {
				cfg.LineLength = lineLength
			}
			if flags.Changed("function-line-length") {
				cfg.FunctionLineLength = fnLineLength
			}
			if flags.Changed("color") {
				cfg.Color = color
			}
			if flags.Changed("distribution") {
				cfg.Workload.Distribution = distribution
			}
			if flags.Changed("min-size") {
				cfg.Workload.MinSize = minSize
			}
			if flags.Changed("max-size") {
				cfg.Workload.MaxSize = maxSize
			}

			return runSuites(cmd.Context(), logger, cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "",
		"Path to a TOML or YAML config file")
	flags.StringSliceVar(&suiteNames, "suites", nil,
		"Suites to run (default: all except demos)")
	flags.IntVar(&trials, "trials", 1000,
		"Randomized trials per suite")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed (0 = use current time)")
	flags.Var(&level, "verbosity",
		"Report verbosity: silent, normal, verbose")
	flags.IntVar(&lineLength, "line-length", 50,
		"Width of randomized progress lines")
	flags.IntVar(&fnLineLength, "function-line-length", 60,
		"Width of deterministic case labels")
	flags.StringVar(&color, "color", string(report.ColorAuto),
		"Color verdicts: auto, always, never")
	flags.StringVar(&distribution, "distribution", "uniform",
		"Argument size distribution: uniform, power-law, exponential")
	flags.IntVar(&minSize, "min-size", 0,
		"Minimum argument size")
	flags.IntVar(&maxSize, "max-size", 64,
		"Maximum argument size (0 = trial count)")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bundled suites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()

			for _, s := range suites.All() {
				name := s.Name
				if s.Demo {
					name += " (demo)"
				}

				fmt.Fprintf(w, "%-16s %s\n", name, s.Description)
			}

			return nil
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}

	return config.LoadFromFile(path)
}

func runSuites(
	ctx context.Context,
	logger *slog.Logger,
	stdout io.Writer,
	cfg *config.Config,
) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	selected, err := suites.Select(cfg.Suites)
	if err != nil {
		return err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	names := make([]string, len(selected))
	for i, s := range selected {
		names[i] = s.Name
	}

	logger.InfoContext(ctx, "starting run",
		slog.String("suites", strings.Join(names, ",")),
		slog.Int("trials", cfg.Trials),
		slog.Int64("seed", cfg.Seed),
		slog.String("verbosity", cfg.Verbosity.String()),
		slog.String("distribution", cfg.Workload.Distribution),
	)

	opts := suites.Options{
		Trials:             cfg.Trials,
		Workload:           cfg.WorkloadConfig(),
		Output:             stdout,
		Verbosity:          cfg.Verbosity,
		LineLength:         cfg.LineLength,
		FunctionLineLength: cfg.FunctionLineLength,
		Color:              report.UseColor(cfg.ColorMode(), stdout),
		Logger:             logger,
	}

	rows := make([]report.SuiteRow, 0, len(selected))

	for _, s := range selected {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run interrupted: %w", err)
		}

		start := time.Now()
		sum := s.Run(opts)
		elapsed := time.Since(start)

		logger.InfoContext(ctx, "suite finished",
			slog.String("suite", sum.Name),
			slog.Bool("passed", sum.Passed),
			slog.Int("divergences", sum.Divergences),
			slog.Duration("elapsed", elapsed),
		)

		rows = append(rows, summaryRow(sum, elapsed))
	}

	if cfg.Verbosity.Allows(verbosity.Normal) {
		if err := report.Table(stdout, rows); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	failed := 0
	for _, r := range rows {
		if !r.Passed {
			failed++
		}
	}

	if failed > 0 {
		logger.WarnContext(ctx, "run failed",
			slog.Int("failed", failed),
			slog.Int("suites", len(rows)),
		)

		return fmt.Errorf("%d of %d: %w", failed, len(rows), errSuitesFailed)
	}

	logger.InfoContext(ctx, "run complete")

	return nil
}

func summaryRow(sum suites.Summary, elapsed time.Duration) report.SuiteRow {
	row := report.SuiteRow{
		Name:        sum.Name,
		Passed:      sum.Passed,
		CasesRun:    sum.CasesRun,
		CasesPassed: sum.CasesPassed,
		Requested:   sum.Requested,
		Executed:    sum.Executed,
		TrialsOK:    sum.TrialsOK,
		Divergences: sum.Divergences,
		Elapsed:     elapsed,
	}

	if sum.Fault != nil {
		row.Fault = sum.Fault.Error()
	}

	return row
}
