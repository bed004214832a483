package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"colloquy-hq/colloquy/pkg/analysis"
)

const sampleLog = `{
  "metadata": {"topic": "quantum physics"},
  "conversation": [
    {"speaker": "ai1", "message": "I love discussing quantum physics and quantum theory.", "timestamp": "2026-01-02T10:00:00Z"},
    {"speaker": "ai2", "message": "I hate that quantum physics gets reduced to slogans.", "timestamp": "2026-01-02T10:00:04Z"},
    {"speaker": "ai1", "message": "Interesting perspective. Quantum theory rewards careful reading.", "timestamp": "2026-01-02T10:00:09Z"},
    {"speaker": "ai2", "message": "I disagree completely. Careful reading reveals quantum theory gaps.", "timestamp": "2026-01-02T10:00:13Z"}
  ]
}`

func writeSampleLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "debate.json")
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand_Summary(t *testing.T) {
	path := writeSampleLog(t)

	out, err := execute(t, "analyze", path)
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	for _, want := range []string{"ANALYSIS SUMMARY", "Total messages:   4", "Turn changes:     3"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	path := writeSampleLog(t)

	out, err := execute(t, "analyze", path, "--format", "json")
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}

	var res analysis.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if res.Stats.TotalMessages != 4 {
		t.Errorf("expected 4 messages, got %d", res.Stats.TotalMessages)
	}
	if res.Flow == nil || res.Flow.TurnChanges != 3 {
		t.Errorf("expected flow with 3 turn changes, got %+v", res.Flow)
	}
}

func TestAnalyzeCommand_OutputFile(t *testing.T) {
	path := writeSampleLog(t)
	outPath := filepath.Join(t.TempDir(), "result.json")

	if _, err := execute(t, "analyze", path, "--format", "json", "--output", outPath); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	defer func() { analyzeOutput = "" }()

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var res analysis.Result
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("output file is not valid JSON: %v", err)
	}
}

func TestAnalyzeCommand_MissingFile(t *testing.T) {
	analyzeOutput = ""
	if _, err := execute(t, "analyze", filepath.Join(t.TempDir(), "absent.json"), "--format", "summary"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestAnalyzeCommand_BadFormat(t *testing.T) {
	path := writeSampleLog(t)
	if _, err := execute(t, "analyze", path, "--format", "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
	analyzeFormat = "summary"
}
