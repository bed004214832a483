package archive

import (
	"context"
	"time"

	"colloquy-hq/colloquy/pkg/analysis"
)

// RunRecord is one archived analysis run: the immutable analysis result plus
// the run metadata that identifies when and over what it was produced.
// Metadata lives here rather than on the result so that the result itself
// stays a pure function of its input.
type RunRecord struct {
	// ID uniquely identifies the run.
	ID string `json:"id"`

	// Source is the path or name of the analyzed conversation log.
	Source string `json:"source"`

	// RecordedAt is when the run was archived, in UTC.
	RecordedAt time.Time `json:"recorded_at"`

	// MessageCount is the number of utterances analyzed.
	MessageCount int `json:"message_count"`

	// TurnChanges is the flow turn-change count, -1 if flow was unavailable.
	TurnChanges int `json:"turn_changes"`

	// EngagementScore is the flow engagement score, 0 if flow was unavailable.
	EngagementScore float64 `json:"engagement_score"`

	// Result is the full analysis result.
	Result *analysis.Result `json:"result"`
}

// Query selects archived runs. Zero-valued fields do not filter.
type Query struct {
	// Source filters by exact source match.
	Source string

	// Since keeps runs recorded at or after this time.
	Since time.Time

	// Until keeps runs recorded before this time.
	Until time.Time

	// Limit caps the number of returned runs. Zero means no cap.
	Limit int

	// Offset skips this many runs before returning.
	Offset int
}

// Storage persists archived runs. Implementations must return runs in
// descending RecordedAt order from Query.
type Storage interface {
	// Store persists one run record.
	Store(ctx context.Context, rec *RunRecord) error

	// Get fetches one run by identifier. Returns NotFoundError if absent.
	Get(ctx context.Context, id string) (*RunRecord, error)

	// Query lists runs matching the query, newest first.
	Query(ctx context.Context, q Query) ([]*RunRecord, error)

	// Count reports the number of stored runs.
	Count(ctx context.Context) (int, error)

	// Delete removes one run by identifier. Returns NotFoundError if absent.
	Delete(ctx context.Context, id string) error

	// DeleteOlderThan removes runs recorded before the cutoff and reports
	// how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)

	// Close releases backend resources.
	Close() error
}
