package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"colloquy-hq/colloquy/pkg/analysis"
	"colloquy-hq/colloquy/pkg/archive"
	"colloquy-hq/colloquy/pkg/cli"
	"colloquy-hq/colloquy/pkg/conversation"
)

var (
	analyzeFormat string
	analyzeOutput string
	analyzeStore  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <conversation.json>",
	Short: "Analyze a conversation log",
	Long: `Analyze a two-party conversation log and print the results.

The input is a JSON file with a "conversation" array of messages, each
carrying a speaker, message text, and timestamp. A bare JSON array of
messages is also accepted.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "summary", "output format (summary or json)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write output to file instead of stdout")
	analyzeCmd.Flags().BoolVar(&analyzeStore, "store", false, "archive the run")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(analyzeFormat)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	source := args[0]
	conv, err := conversation.Load(source)
	if err != nil {
		return err
	}

	analyzer, err := analysis.New(&cfg.Analysis, nil)
	if err != nil {
		return err
	}
	res, err := analyzer.Analyze(conv)
	if err != nil {
		return err
	}

	if analyzeStore {
		store, err := openStorage(&cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()

		recorder := archive.NewRecorder(store, nil)
		rec, err := recorder.Record(cmd.Context(), source, res)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "archived run %s\n", rec.ID)
	}

	var out io.Writer = cmd.OutOrStdout()
	if analyzeOutput != "" {
		f, err := os.Create(analyzeOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return cli.WriteResult(out, res, format)
}
