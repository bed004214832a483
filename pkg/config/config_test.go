package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analysis.Sentiment.PositiveThreshold != DefaultPositiveThreshold {
		t.Errorf("expected positive threshold %v, got %v",
			DefaultPositiveThreshold, cfg.Analysis.Sentiment.PositiveThreshold)
	}
	if cfg.Analysis.Sentiment.NegativeThreshold != DefaultNegativeThreshold {
		t.Errorf("expected negative threshold %v, got %v",
			DefaultNegativeThreshold, cfg.Analysis.Sentiment.NegativeThreshold)
	}
	if cfg.Analysis.Topics.TopicCount != DefaultTopicCount {
		t.Errorf("expected topic count %d, got %d", DefaultTopicCount, cfg.Analysis.Topics.TopicCount)
	}
	if cfg.Analysis.Topics.RandomSeed != DefaultRandomSeed {
		t.Errorf("expected random seed %d, got %d", DefaultRandomSeed, cfg.Analysis.Topics.RandomSeed)
	}
	if cfg.Analysis.Flow.TurnWeight != DefaultTurnWeight || cfg.Analysis.Flow.LengthWeight != DefaultLengthWeight {
		t.Errorf("expected flow weights %v/%v, got %v/%v",
			DefaultTurnWeight, DefaultLengthWeight,
			cfg.Analysis.Flow.TurnWeight, cfg.Analysis.Flow.LengthWeight)
	}
	if cfg.Archive.Backend != "sqlite" {
		t.Errorf("expected default backend sqlite, got %q", cfg.Archive.Backend)
	}
	if cfg.Watch.DebounceInterval != 500*time.Millisecond {
		t.Errorf("expected default debounce 500ms, got %v", cfg.Watch.DebounceInterval)
	}

	// Defaults must validate cleanly.
	if err := Validate(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.Analysis.Topics.TopicCount = 7
	cfg.Analysis.Sentiment.PositiveThreshold = 0.2
	cfg.Analysis.Sentiment.NegativeThreshold = -0.3

	ApplyDefaults(cfg)

	if cfg.Analysis.Topics.TopicCount != 7 {
		t.Errorf("expected explicit topic count preserved, got %d", cfg.Analysis.Topics.TopicCount)
	}
	if cfg.Analysis.Sentiment.PositiveThreshold != 0.2 {
		t.Errorf("expected explicit positive threshold preserved, got %v",
			cfg.Analysis.Sentiment.PositiveThreshold)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "topic count zero",
			mutate:  func(cfg *Config) { cfg.Analysis.Topics.TopicCount = -1 },
			wantErr: "analysis.topics.topic_count",
		},
		{
			name:    "top words per topic zero",
			mutate:  func(cfg *Config) { cfg.Analysis.Topics.TopWordsPerTopic = -1 },
			wantErr: "analysis.topics.top_words_per_topic",
		},
		{
			name:    "min document frequency zero",
			mutate:  func(cfg *Config) { cfg.Analysis.Topics.MinDocumentFrequency = -2 },
			wantErr: "analysis.topics.min_document_frequency",
		},
		{
			name: "inverted sentiment thresholds",
			mutate: func(cfg *Config) {
				cfg.Analysis.Sentiment.PositiveThreshold = -0.5
				cfg.Analysis.Sentiment.NegativeThreshold = 0.5
			},
			wantErr: "analysis.sentiment.negative_threshold",
		},
		{
			name:    "threshold out of range",
			mutate:  func(cfg *Config) { cfg.Analysis.Sentiment.PositiveThreshold = 1.5 },
			wantErr: "analysis.sentiment.positive_threshold",
		},
		{
			name:    "lexical top words zero",
			mutate:  func(cfg *Config) { cfg.Analysis.Lexical.TopWords = -3 },
			wantErr: "analysis.lexical.top_words",
		},
		{
			name: "both flow weights zero",
			mutate: func(cfg *Config) {
				cfg.Analysis.Flow.TurnWeight = 0
				cfg.Analysis.Flow.LengthWeight = 0
			},
			wantErr: "analysis.flow",
		},
		{
			name:    "unknown archive backend",
			mutate:  func(cfg *Config) { cfg.Archive.Backend = "postgres" },
			wantErr: "archive.backend",
		},
		{
			name:    "bad prune schedule",
			mutate:  func(cfg *Config) { cfg.Archive.Retention.PruneSchedule = "not a cron" },
			wantErr: "archive.retention.prune_schedule",
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Telemetry.Logging.Level = "loud" },
			wantErr: "telemetry.logging.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestValidate_CollectsMultipleErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Analysis.Topics.TopicCount = -1
	cfg.Analysis.Lexical.TopWords = -1
	cfg.Telemetry.Logging.Format = "xml"

	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(verr.Errors), verr.Errors)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
analysis:
  topics:
    topic_count: 5
    random_seed: 99
  sentiment:
    positive_threshold: 0.1
    negative_threshold: -0.1
archive:
  backend: memory
telemetry:
  logging:
    level: debug
    format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Analysis.Topics.TopicCount != 5 {
		t.Errorf("expected topic count 5, got %d", cfg.Analysis.Topics.TopicCount)
	}
	if cfg.Analysis.Topics.RandomSeed != 99 {
		t.Errorf("expected seed 99, got %d", cfg.Analysis.Topics.RandomSeed)
	}
	// Defaults fill unset fields.
	if cfg.Analysis.Topics.TopWordsPerTopic != DefaultTopWordsPerTopic {
		t.Errorf("expected default top words per topic, got %d", cfg.Analysis.Topics.TopWordsPerTopic)
	}
	if cfg.Archive.Backend != "memory" {
		t.Errorf("expected backend memory, got %q", cfg.Archive.Backend)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
analysis:
  topics:
    topic_count: -4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Errorf("expected validation error, got nil")
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file, got nil")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("archive:\n  backend: memory\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("COLLOQUY_TOPICS_TOPIC_COUNT", "9")
	t.Setenv("COLLOQUY_LOGGING_LEVEL", "warn")

	cfg, err := LoadConfigWithEnvOverrides(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analysis.Topics.TopicCount != 9 {
		t.Errorf("expected env override topic count 9, got %d", cfg.Analysis.Topics.TopicCount)
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("expected env override level warn, got %q", cfg.Telemetry.Logging.Level)
	}
}
