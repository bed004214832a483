package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"colloquy-hq/colloquy/pkg/config"
	"colloquy-hq/colloquy/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "colloquy",
	Short: "Colloquy - conversation analysis for AI-to-AI exchanges",
	Long: `Colloquy analyzes two-party AI conversation logs.

Given a JSON transcript it reports:
  - Per-message and per-speaker sentiment
  - Word frequency and vocabulary statistics
  - Latent topics inferred with a seeded LDA model
  - Turn-taking, response times, and an engagement score

Components degrade independently: a conversation too small for topic
modeling still gets sentiment, word frequency, and flow analysis.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration for a command run. Without --config the
// defaults apply, adjusted by environment overrides. --verbose forces debug
// logging regardless of the configured level.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	if cfgFile != "" {
		loaded, err := config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	return cfg, nil
}

// setupLogging installs the configured logger as the process default.
func setupLogging(cfg *config.Config) error {
	_, err := logging.New(cfg.Telemetry.Logging)
	return err
}
