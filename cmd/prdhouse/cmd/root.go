// Package cmd implements the prdhouse CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/prdhouse/prdhouse/internal/config"
)

var (
	debug    bool
	provider string
	model    string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "prdhouse",
	Short: "Turn structured PRDs into interactive HTML prototypes",
	Long: `prdhouse analyzes a structured product requirement document, matches it
against a curated reference template library, and drives an LLM to produce a
self-contained interactive HTML prototype.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		cfg = loaded

		if provider != "" {
			cfg.Generation.Provider = provider
		}
		if model != "" {
			entry := cfg.Providers[cfg.Generation.Provider]
			entry.Model = model
			cfg.Providers[cfg.Generation.Provider] = entry
		}
		if err := config.Validate(cfg); err != nil {
			return err
		}

		if debug || cfg.Debug {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	},
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&provider, "provider", "", "Model provider (anthropic, openai, openrouter)")
	rootCmd.PersistentFlags().StringVar(&model, "model", "", "Model ID override for the active provider")
}
