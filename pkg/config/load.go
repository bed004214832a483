package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file at the specified path.
// It applies default values, validates the configuration, and returns any
// errors. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and applies
// environment variable overrides. Variables follow the naming convention
// COLLOQUY_SECTION_FIELD (e.g., COLLOQUY_TOPICS_TOPIC_COUNT) and always take
// precedence over file-based configuration.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration invalid after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("COLLOQUY_SENTIMENT_POSITIVE_THRESHOLD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Analysis.Sentiment.PositiveThreshold = f
		}
	}
	if val := os.Getenv("COLLOQUY_SENTIMENT_NEGATIVE_THRESHOLD"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			cfg.Analysis.Sentiment.NegativeThreshold = f
		}
	}
	if val := os.Getenv("COLLOQUY_LEXICAL_TOP_WORDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Analysis.Lexical.TopWords = i
		}
	}
	if val := os.Getenv("COLLOQUY_TOPICS_TOPIC_COUNT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Analysis.Topics.TopicCount = i
		}
	}
	if val := os.Getenv("COLLOQUY_TOPICS_TOP_WORDS_PER_TOPIC"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Analysis.Topics.TopWordsPerTopic = i
		}
	}
	if val := os.Getenv("COLLOQUY_TOPICS_MIN_DOCUMENT_FREQUENCY"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.Analysis.Topics.MinDocumentFrequency = i
		}
	}
	if val := os.Getenv("COLLOQUY_TOPICS_RANDOM_SEED"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Analysis.Topics.RandomSeed = i
		}
	}
	if val := os.Getenv("COLLOQUY_ARCHIVE_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Archive.Enabled = b
		}
	}
	if val := os.Getenv("COLLOQUY_ARCHIVE_BACKEND"); val != "" {
		cfg.Archive.Backend = val
	}
	if val := os.Getenv("COLLOQUY_ARCHIVE_SQLITE_PATH"); val != "" {
		cfg.Archive.SQLite.Path = val
	}
	if val := os.Getenv("COLLOQUY_WATCH_PATH"); val != "" {
		cfg.Watch.Path = val
	}
	if val := os.Getenv("COLLOQUY_LOGGING_LEVEL"); val != "" {
		cfg.Telemetry.Logging.Level = val
	}
	if val := os.Getenv("COLLOQUY_LOGGING_FORMAT"); val != "" {
		cfg.Telemetry.Logging.Format = val
	}
	if val := os.Getenv("COLLOQUY_METRICS_LISTEN_ADDRESS"); val != "" {
		cfg.Telemetry.Metrics.ListenAddress = val
	}
}
