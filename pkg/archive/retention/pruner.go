package retention

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"colloquy-hq/colloquy/pkg/archive"
)

// Config contains configuration for the retention pruner.
type Config struct {
	// RetentionDays is the number of days to retain archived runs.
	// 0 means keep runs forever (no age-based pruning).
	RetentionDays int

	// MaxRecords is the maximum number of runs to keep. 0 means unlimited.
	MaxRecords int

	// PruneSchedule is a cron expression for scheduled pruning.
	// Empty disables the scheduler.
	PruneSchedule string
}

// DefaultConfig returns the default retention configuration.
func DefaultConfig() *Config {
	return &Config{
		RetentionDays: 90,
		MaxRecords:    0,
		PruneSchedule: "0 3 * * *",
	}
}

// Pruner enforces the retention policy on archived runs.
type Pruner struct {
	storage   archive.Storage
	config    *Config
	logger    *slog.Logger
	scheduler *Scheduler
	now       func() time.Time
}

// NewPruner creates a retention pruner over the given storage.
func NewPruner(storage archive.Storage, config *Config) *Pruner {
	if config == nil {
		config = DefaultConfig()
	}
	p := &Pruner{
		storage: storage,
		config:  config,
		logger:  slog.Default().With("component", "archive.retention"),
		now:     time.Now,
	}
	p.scheduler = NewScheduler(p)
	return p
}

// Scheduler returns the pruner's scheduler for lifecycle control.
func (p *Pruner) Scheduler() *Scheduler {
	return p.scheduler
}

// Prune applies the retention policy once. Age-based pruning runs first,
// then count-based pruning trims the archive down to MaxRecords by deleting
// the oldest runs. Returns the total number of runs deleted.
func (p *Pruner) Prune(ctx context.Context) (int, error) {
	var total int

	if p.config.RetentionDays > 0 {
		cutoff := p.now().UTC().AddDate(0, 0, -p.config.RetentionDays)
		deleted, err := p.storage.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			return total, fmt.Errorf("prune by age: %w", err)
		}
		total += deleted
		if deleted > 0 {
			p.logger.Info("pruned runs by age",
				slog.Int("deleted", deleted),
				slog.Int("retention_days", p.config.RetentionDays))
		}
	}

	if p.config.MaxRecords > 0 {
		deleted, err := p.pruneByCount(ctx)
		if err != nil {
			return total, fmt.Errorf("prune by count: %w", err)
		}
		total += deleted
		if deleted > 0 {
			p.logger.Info("pruned runs by count",
				slog.Int("deleted", deleted),
				slog.Int("max_records", p.config.MaxRecords))
		}
	}

	return total, nil
}

// pruneByCount deletes the oldest runs beyond the MaxRecords cap. Query
// returns runs newest first, so everything past the cap is deletable.
func (p *Pruner) pruneByCount(ctx context.Context) (int, error) {
	excess, err := p.storage.Query(ctx, archive.Query{Offset: p.config.MaxRecords})
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, rec := range excess {
		if err := p.storage.Delete(ctx, rec.ID); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
