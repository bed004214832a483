package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"colloquy-hq/colloquy/pkg/archive"
	"colloquy-hq/colloquy/pkg/archive/export"
)

var (
	runsSource string
	runsLimit  int
	runsFormat string
	runsOutput string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect archived analysis runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived runs, newest first",
	RunE:  runRunsList,
}

var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archived runs as JSON or CSV",
	RunE:  runRunsExport,
}

var runsPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Apply the retention policy once",
	RunE:  runRunsPrune,
}

func init() {
	runsCmd.PersistentFlags().StringVar(&runsSource, "source", "", "filter by source file")
	runsCmd.PersistentFlags().IntVar(&runsLimit, "limit", 0, "maximum runs to return (0 = all)")

	runsExportCmd.Flags().StringVarP(&runsFormat, "format", "f", "json", "export format (json or csv)")
	runsExportCmd.Flags().StringVarP(&runsOutput, "output", "o", "", "write output to file instead of stdout")

	runsCmd.AddCommand(runsListCmd, runsExportCmd, runsPruneCmd)
	rootCmd.AddCommand(runsCmd)
}

func queryRuns(cmd *cobra.Command) ([]*archive.RunRecord, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := setupLogging(cfg); err != nil {
		return nil, err
	}

	store, err := openStorage(&cfg.Archive)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.Query(cmd.Context(), archive.Query{
		Source: runsSource,
		Limit:  runsLimit,
	})
}

func runRunsList(cmd *cobra.Command, args []string) error {
	records, err := queryRuns(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "no archived runs")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-20s  %-24s  %8s  %6s  %10s\n",
		"ID", "RECORDED", "SOURCE", "MESSAGES", "TURNS", "ENGAGEMENT")
	for _, rec := range records {
		fmt.Fprintf(out, "%-36s  %-20s  %-24s  %8d  %6d  %10.3f\n",
			rec.ID,
			rec.RecordedAt.Format(time.RFC3339),
			rec.Source,
			rec.MessageCount,
			rec.TurnChanges,
			rec.EngagementScore)
	}
	return nil
}

func runRunsExport(cmd *cobra.Command, args []string) error {
	records, err := queryRuns(cmd)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if runsOutput != "" {
		f, err := os.Create(runsOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch runsFormat {
	case "json":
		return export.NewJSONExporter(true).Export(cmd.Context(), records, out)
	case "csv":
		return export.NewCSVExporter(true).Export(cmd.Context(), records, out)
	default:
		return fmt.Errorf("unknown export format %q (want json or csv)", runsFormat)
	}
}

func runRunsPrune(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	store, err := openStorage(&cfg.Archive)
	if err != nil {
		return err
	}
	defer store.Close()

	pruner := newPruner(store, cfg)
	deleted, err := pruner.Prune(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "pruned %d run(s)\n", deleted)
	return nil
}
