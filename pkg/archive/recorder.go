package archive

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"colloquy-hq/colloquy/pkg/analysis"
)

// Recorder archives analysis results to a storage backend.
type Recorder struct {
	storage Storage
	logger  *slog.Logger
	now     func() time.Time
}

// NewRecorder creates a recorder backed by the given storage.
func NewRecorder(storage Storage, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Record archives one analysis result and returns the stored record. The
// record gets a fresh identifier and a UTC timestamp; the result itself is
// stored untouched.
func (r *Recorder) Record(ctx context.Context, source string, res *analysis.Result) (*RunRecord, error) {
	rec := &RunRecord{
		ID:           uuid.NewString(),
		Source:       source,
		RecordedAt:   r.now().UTC(),
		MessageCount: res.Stats.TotalMessages,
		TurnChanges:  -1,
		Result:       res,
	}
	if res.Flow != nil {
		rec.TurnChanges = res.Flow.TurnChanges
		rec.EngagementScore = res.Flow.EngagementScore
	}

	if err := r.storage.Store(ctx, rec); err != nil {
		return nil, err
	}

	r.logger.Info("archived analysis run",
		slog.String("run_id", rec.ID),
		slog.String("source", source),
		slog.Int("messages", rec.MessageCount))
	return rec, nil
}
