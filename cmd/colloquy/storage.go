package main

import (
	"fmt"

	"colloquy-hq/colloquy/pkg/archive"
	"colloquy-hq/colloquy/pkg/archive/retention"
	"colloquy-hq/colloquy/pkg/archive/storage"
	"colloquy-hq/colloquy/pkg/config"
)

// openStorage builds the archive storage backend selected by configuration.
func openStorage(cfg *config.ArchiveConfig) (archive.Storage, error) {
	switch cfg.Backend {
	case "memory":
		return storage.NewMemory(), nil
	case "sqlite", "":
		return storage.NewSQLite(&storage.SQLiteConfig{
			Path:        cfg.SQLite.Path,
			BusyTimeout: cfg.SQLite.BusyTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.Backend)
	}
}

// newPruner builds a retention pruner from configuration.
func newPruner(store archive.Storage, cfg *config.Config) *retention.Pruner {
	return retention.NewPruner(store, &retention.Config{
		RetentionDays: cfg.Archive.Retention.RetentionDays,
		MaxRecords:    cfg.Archive.Retention.MaxRecords,
		PruneSchedule: cfg.Archive.Retention.PruneSchedule,
	})
}
