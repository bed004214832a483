package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"colloquy-hq/colloquy/pkg/analysis"
	"colloquy-hq/colloquy/pkg/archive"
	"colloquy-hq/colloquy/pkg/cli"
	"colloquy-hq/colloquy/pkg/conversation"
	"colloquy-hq/colloquy/pkg/telemetry/metrics"
	"colloquy-hq/colloquy/pkg/watch"
)

var watchPath string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and analyze conversation logs as they appear",
	Long: `Watch a directory for new or modified conversation logs and analyze
each one as it settles. Results are archived when archiving is enabled, the
retention scheduler prunes old runs, and Prometheus metrics are exposed when
the metrics endpoint is enabled.

The watch runs until interrupted.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchPath, "path", "p", "", "directory to watch (overrides config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}
	if watchPath != "" {
		cfg.Watch.Path = watchPath
	}
	if cfg.Watch.Path == "" {
		return fmt.Errorf("watch requires a directory: set --path or watch.path in config")
	}

	logger := slog.Default()
	ctx := cli.SetupSignalHandler()

	analyzer, err := analysis.New(&cfg.Analysis, logger)
	if err != nil {
		return err
	}

	var recorder *archive.Recorder
	if cfg.Archive.Enabled {
		store, err := openStorage(&cfg.Archive)
		if err != nil {
			return err
		}
		defer store.Close()
		recorder = archive.NewRecorder(store, logger)

		pruner := newPruner(store, cfg)
		if err := pruner.Scheduler().Start(ctx); err != nil {
			return err
		}
		defer pruner.Scheduler().Stop()
	}

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(cfg.Telemetry.Metrics.Namespace)
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		server := &http.Server{Addr: cfg.Telemetry.Metrics.ListenAddress, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", slog.Any("error", err))
			}
		}()
		defer server.Shutdown(context.Background())
		logger.Info("metrics endpoint listening",
			slog.String("address", cfg.Telemetry.Metrics.ListenAddress))
	}

	handler := func(path string) {
		analyzeWatchedFile(ctx, path, analyzer, recorder, collector, logger)
	}

	watcher, err := watch.New(cfg.Watch, handler, logger)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(ctx); err != nil && err != context.Canceled {
		return err
	}
	logger.Info("watch stopped")
	return nil
}

// analyzeWatchedFile runs one analysis cycle for a settled file. Failures
// are logged, never fatal; the watch keeps going.
func analyzeWatchedFile(ctx context.Context, path string, analyzer *analysis.Analyzer,
	recorder *archive.Recorder, collector *metrics.Collector, logger *slog.Logger) {

	started := time.Now()

	conv, err := conversation.Load(path)
	if err != nil {
		logger.Error("skipping unreadable conversation log",
			slog.String("path", path), slog.Any("error", err))
		return
	}

	res, err := analyzer.Analyze(conv)
	if err != nil {
		logger.Error("analysis failed",
			slog.String("path", path), slog.Any("error", err))
		return
	}

	if collector != nil {
		collector.ObserveRun(res, time.Since(started))
	}

	if recorder != nil {
		if _, err := recorder.Record(ctx, path, res); err != nil {
			logger.Error("archiving failed",
				slog.String("path", path), slog.Any("error", err))
		}
	}

	logger.Info("analyzed conversation log",
		slog.String("path", path),
		slog.Int("messages", res.Stats.TotalMessages),
		slog.Duration("elapsed", time.Since(started)))
}
