package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourbnb/prompt"
	"github.com/katalvlaran/tourbnb/render"
	"github.com/katalvlaran/tourbnb/tsp"
)

type solveFlags struct {
	cities  int
	workers int
	verbose bool
	tables  bool
	verify  bool
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one catalog instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, f)
		},
	}
	cmd.Flags().IntVarP(&f.cities, "cities", "n", 0, "City count of the catalog instance (prompt when omitted)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Worker goroutines (default: catalog suggestion, else GOMAXPROCS)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print the node trace (default: catalog suggestion)")
	cmd.Flags().BoolVar(&f.tables, "tables", true, "Include decision tables in the node trace")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "Cross-check the cost with the Held–Karp solver")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, f *solveFlags) error {
	cat, err := a.loadCatalog()
	if err != nil {
		return err
	}

	cities := f.cities
	if !cmd.Flags().Changed("cities") {
		p := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
		if cities, err = p.Cities(cat.Sizes()); err != nil {
			return err
		}
	}
	entry, err := cat.Lookup(cities)
	if err != nil {
		return err
	}

	opts := tsp.DefaultOptions()
	opts.Logger = a.logger.With(zap.String("instance", entry.Name))
	switch {
	case cmd.Flags().Changed("workers"):
		opts.Workers = f.workers
	case entry.Workers > 0:
		opts.Workers = entry.Workers
	}
	verbose := entry.Verbose
	if cmd.Flags().Changed("verbose") {
		verbose = f.verbose
	}
	if verbose {
		tr := render.NewTracer(cmd.OutOrStdout(), entry.Labels)
		tr.Tables = f.tables
		opts.Tracer = tr
	}

	// Ctrl-C stops the workers; the search has no deadline of its own.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info("solving",
		zap.String("instance", entry.Name),
		zap.Int("cities", entry.Cities),
		zap.Int("workers", opts.Workers),
		zap.Bool("verbose", verbose))

	start := time.Now()
	res, err := tsp.Solve(ctx, entry.Instance(), opts)
	if err != nil {
		return fmt.Errorf("solve %s: %w", entry.Name, err)
	}
	rep := render.Report{
		Name:    entry.Name,
		Labels:  entry.Labels,
		Result:  res,
		Elapsed: time.Since(start),
	}

	if f.verify {
		exact, err := tsp.SolveExact(entry.Instance())
		if err != nil {
			return fmt.Errorf("verify %s: %w", entry.Name, err)
		}
		rep.Exact = &exact.Cost
		if exact.Cost != res.Cost {
			a.logger.Error("cost mismatch",
				zap.Float64("branch_and_bound", res.Cost),
				zap.Float64("held_karp", exact.Cost))
		}
	}

	return rep.Write(cmd.OutOrStdout())
}
