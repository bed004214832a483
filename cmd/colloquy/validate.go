package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"colloquy-hq/colloquy/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validate the configuration file given with --config. All violations
are reported together, not just the first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return fmt.Errorf("validate requires --config")
		}

		_, err := config.LoadConfig(cfgFile)
		if err != nil {
			var vErr config.ValidationError
			if errors.As(err, &vErr) {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: invalid configuration:\n", cfgFile)
				for _, fieldErr := range vErr.Errors {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s: %s\n", fieldErr.Field, fieldErr.Message)
				}
				return fmt.Errorf("%d validation error(s)", len(vErr.Errors))
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: configuration is valid\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
