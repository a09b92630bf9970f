// Command aoc2023 solves one Advent of Code 2023 puzzle and prints both
// answers with the elapsed time.
//
//	aoc2023 [--config path] [--input-dir dir] [--log-level lvl] <day>
//
// Inputs are read from the cache directory, downloaded with the AOC_SESSION
// cookie on a miss. A .env file in the working directory is loaded first.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/internal/config"
	"github.com/katalvlaran/aoc/internal/logging"
	"github.com/katalvlaran/aoc/puzzle"
	"github.com/katalvlaran/aoc/solver"
	"github.com/katalvlaran/aoc/y2023"
)

// errNoDay is returned when the day argument is missing.
var errNoDay = errors.New("No Day given: usage aoc2023 <day>")

type rootFlags struct {
	config   string
	inputDir string
	logLevel string
}

// app holds the collaborators of one invocation. Tests replace fetcher to
// stay offline.
type app struct {
	flags   rootFlags
	fetcher func(cfg *config.Config) input.Fetcher
}

func newRootCmd() *cobra.Command {
	a := &app{fetcher: httpFetcher}
	cmd := &cobra.Command{
		Use:   "aoc2023 <day>",
		Short: "Solve an Advent of Code 2023 puzzle",
		Args: func(_ *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				return errNoDay
			case len(args) > 1:
				return fmt.Errorf("expected one day, got %d arguments", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().StringVar(&a.flags.config, "config", "", "config file (default "+config.DefaultPath+" if present)")
	cmd.Flags().StringVar(&a.flags.inputDir, "input-dir", "", "puzzle input cache directory")
	cmd.Flags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

func httpFetcher(cfg *config.Config) input.Fetcher {
	return input.NewHTTPFetcher(cfg.Session,
		input.WithBaseURL(cfg.BaseURL),
		input.WithTimeout(cfg.Timeout),
	)
}

func (a *app) run(ctx context.Context, out io.Writer, arg string) error {
	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	day, err := puzzle.ParseDay(arg)
	if err != nil {
		return err
	}

	cfg, err := config.Load(a.flags.config)
	if err != nil {
		return err
	}
	if a.flags.inputDir != "" {
		cfg.InputDir = a.flags.inputDir
	}
	if a.flags.logLevel != "" {
		cfg.LogLevel = a.flags.logLevel
	}
	logger := logging.Console(cfg.LogLevel)

	provider := input.NewProvider(a.fetcher(cfg),
		input.WithDir(cfg.InputDir),
		input.WithLogger(&logger),
	)
	registry := solver.NewRegistry(y2023.Year, y2023.Factories, provider, solver.WithLogger(&logger))

	start := time.Now()
	report, err := registry.Run(ctx, puzzle.Selector{Year: y2023.Year, Day: day})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Fprintln(out, "\n"+report+"\n")
	fmt.Fprintf(out, "Elapsed: %s\n", formatElapsed(elapsed))
	return nil
}

// formatElapsed renders d as HH:MM:SS.ffffff.
func formatElapsed(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	d -= s * time.Second
	return fmt.Sprintf("%02d:%02d:%02d.%06d", h, m, s, d/time.Microsecond)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
