package export

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"colloquy-hq/colloquy/pkg/archive"
)

// CSVExporter exports archived run summaries as CSV. The full nested result
// does not flatten usefully, so rows carry the run-level summary columns.
type CSVExporter struct {
	// IncludeHeader writes a header row with column names.
	IncludeHeader bool
}

// NewCSVExporter creates a new CSV exporter.
func NewCSVExporter(includeHeader bool) *CSVExporter {
	return &CSVExporter{IncludeHeader: includeHeader}
}

var csvHeader = []string{
	"id", "source", "recorded_at", "message_count",
	"turn_changes", "engagement_score", "overall_sentiment",
}

// Export writes one row per run to w.
func (e *CSVExporter) Export(ctx context.Context, records []*archive.RunRecord, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if e.IncludeHeader {
		if err := writer.Write(csvHeader); err != nil {
			return archive.NewStorageError("export", "write_csv_header", err)
		}
	}

	for _, rec := range records {
		if err := writer.Write(recordToRow(rec)); err != nil {
			return archive.NewStorageError("export", "write_csv_row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return archive.NewStorageError("export", "flush_csv", err)
	}
	return nil
}

func recordToRow(rec *archive.RunRecord) []string {
	sentiment := ""
	if rec.Result != nil && rec.Result.Sentiment != nil {
		sentiment = strconv.FormatFloat(rec.Result.Sentiment.OverallMean, 'f', 4, 64)
	}
	return []string{
		rec.ID,
		rec.Source,
		rec.RecordedAt.Format(time.RFC3339),
		strconv.Itoa(rec.MessageCount),
		strconv.Itoa(rec.TurnChanges),
		strconv.FormatFloat(rec.EngagementScore, 'f', 4, 64),
		sentiment,
	}
}
