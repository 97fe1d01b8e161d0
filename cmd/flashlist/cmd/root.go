// Package cmd implements the CLI commands for the flashlist server.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/flashlist/internal/config"
	"github.com/donaldgifford/flashlist/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "flashlist",
	Short: "Create listings once and publish them to eBay",
	Long: "An API-first service that stores listings, publishes them to eBay through the\n" +
		"Sell Inventory API, keeps seller tokens fresh, resolves business policies and\n" +
		"leaf categories, and applies marketplace deletion notifications.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and installs the configured logger as
// the slog default.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)
	return cfg, log, nil
}
