package archive_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"colloquy-hq/colloquy/pkg/analysis"
	"colloquy-hq/colloquy/pkg/analysis/flow"
	"colloquy-hq/colloquy/pkg/archive"
	"colloquy-hq/colloquy/pkg/archive/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecorder_Record(t *testing.T) {
	mem := storage.NewMemory()
	recorder := archive.NewRecorder(mem, testLogger())

	res := &analysis.Result{
		Stats: analysis.Stats{TotalMessages: 4},
		Flow:  &flow.Result{TurnChanges: 3, EngagementScore: 0.85},
		Components: map[string]analysis.ComponentStatus{
			analysis.ComponentFlow: {Available: true},
		},
	}

	rec, err := recorder.Record(context.Background(), "debate.json", res)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if rec.ID == "" {
		t.Error("expected a generated run identifier")
	}
	if rec.RecordedAt.IsZero() || rec.RecordedAt.Location() != time.UTC {
		t.Errorf("expected a UTC timestamp, got %v", rec.RecordedAt)
	}
	if rec.MessageCount != 4 || rec.TurnChanges != 3 || rec.EngagementScore != 0.85 {
		t.Errorf("summary fields not derived from result: %+v", rec)
	}

	stored, err := mem.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Result != res {
		t.Error("stored record must reference the original result")
	}
}

func TestRecorder_FlowUnavailable(t *testing.T) {
	mem := storage.NewMemory()
	recorder := archive.NewRecorder(mem, testLogger())

	res := &analysis.Result{
		Stats: analysis.Stats{TotalMessages: 1},
		Components: map[string]analysis.ComponentStatus{
			analysis.ComponentFlow: {Available: false, Reason: "conversation has no utterances"},
		},
	}

	rec, err := recorder.Record(context.Background(), "single.json", res)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.TurnChanges != -1 {
		t.Errorf("expected sentinel turn changes -1, got %d", rec.TurnChanges)
	}
	if rec.EngagementScore != 0 {
		t.Errorf("expected zero engagement, got %v", rec.EngagementScore)
	}
}

func TestRecorder_UniqueIDs(t *testing.T) {
	mem := storage.NewMemory()
	recorder := archive.NewRecorder(mem, testLogger())
	res := &analysis.Result{Components: map[string]analysis.ComponentStatus{}}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		rec, err := recorder.Record(context.Background(), "x.json", res)
		if err != nil {
			t.Fatalf("Record: %v", err)
		}
		if seen[rec.ID] {
			t.Fatalf("duplicate run identifier %q", rec.ID)
		}
		seen[rec.ID] = true
	}
}
