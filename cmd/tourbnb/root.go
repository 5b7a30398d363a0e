package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/tourbnb/catalog"
)

// app carries the state shared by every subcommand.
type app struct {
	logLevel    string
	catalogPath string
	logger      *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "tourbnb",
		Short: "Concurrent Branch-and-Bound solver for small TSP instances",
		Long: `tourbnb finds a provably shortest round trip through a handful of cities.

Partial tours are kept in a shared priority queue ordered by lower bound and
expanded by a fixed pool of workers; the best complete tour prunes every
branch that cannot beat it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "YAML catalog file (default: built-in)")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newListCmd(a))

	return root
}

func (a *app) initLogger() error {
	level, err := zap.ParseAtomicLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	config.Sampling = nil

	if a.logger, err = config.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.catalogPath == "" {
		return catalog.Default()
	}
	a.logger.Debug("loading catalog", zap.String("path", a.catalogPath))

	return catalog.LoadFile(a.catalogPath)
}
