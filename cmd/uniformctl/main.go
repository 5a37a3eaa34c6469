// Command uniformctl builds the uniform spaces and completions described in a
// YAML file, runs their law battery and inspects them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/uniformity/config"
)

var (
	// Global flags
	verbose bool
	file    string
	fuel    int

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "uniformctl",
	Short: "Check and inspect finite uniform spaces and their completions",
	Long: `uniformctl reads a YAML document of finite uniform spaces and completions
(see package config), builds every entry and lets you:

  check    run the law battery over every space and completion
  opens    list the open sets of a space
  compare  print the canonical map between two completions of one space`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", "uniformity.yaml", "YAML document to load")
	rootCmd.PersistentFlags().IntVar(&fuel, "fuel", 0, "Override the document fuel (0 keeps it)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(opensCmd)
	rootCmd.AddCommand(compareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRegistry reads --file and builds it, honouring --fuel.
func loadRegistry() (*config.Registry, error) {
	doc, err := config.Load(file)
	if err != nil {
		return nil, err
	}
	if fuel < 0 {
		return nil, fmt.Errorf("--fuel must be >= 0, got %d", fuel)
	}
	if fuel > 0 {
		doc.Fuel = fuel
	}
	logger.Debug("document loaded",
		zap.String("file", file),
		zap.Int("spaces", len(doc.Spaces)),
		zap.Int("completions", len(doc.Completions)),
	)

	return doc.Build(logger)
}
