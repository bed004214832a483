package config

import "time"

// Default analysis constants. These are configuration defaults, not rules
// baked into component logic; every one of them can be overridden in YAML.
const (
	// DefaultPositiveThreshold is the compound score above which an
	// utterance is labeled positive.
	DefaultPositiveThreshold = 0.05

	// DefaultNegativeThreshold is the compound score below which an
	// utterance is labeled negative.
	DefaultNegativeThreshold = -0.05

	// DefaultTopWords is the number of top frequent words reported.
	DefaultTopWords = 10

	// DefaultTopicCount is the number of latent topics fitted.
	DefaultTopicCount = 3

	// DefaultTopWordsPerTopic is the number of representative words per topic.
	DefaultTopWordsPerTopic = 10

	// DefaultMinDocumentFrequency excludes singleton terms from the
	// topic-model vocabulary.
	DefaultMinDocumentFrequency = 2

	// DefaultRandomSeed seeds the topic model sampler.
	DefaultRandomSeed = 42

	// DefaultTurnWeight weights the normalized turn-change rate in the
	// engagement score.
	DefaultTurnWeight = 0.6

	// DefaultLengthWeight weights message-length consistency in the
	// engagement score.
	DefaultLengthWeight = 0.4
)

// DefaultConfig returns a configuration populated entirely with defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset configuration field.
// It is called by LoadConfig after parsing and before validation.
func ApplyDefaults(cfg *Config) {
	// Sentiment thresholds. Zero is a meaningful threshold, so both default
	// together only when both are unset.
	if cfg.Analysis.Sentiment.PositiveThreshold == 0 && cfg.Analysis.Sentiment.NegativeThreshold == 0 {
		cfg.Analysis.Sentiment.PositiveThreshold = DefaultPositiveThreshold
		cfg.Analysis.Sentiment.NegativeThreshold = DefaultNegativeThreshold
	}

	if cfg.Analysis.Lexical.TopWords == 0 {
		cfg.Analysis.Lexical.TopWords = DefaultTopWords
	}

	if cfg.Analysis.Topics.TopicCount == 0 {
		cfg.Analysis.Topics.TopicCount = DefaultTopicCount
	}
	if cfg.Analysis.Topics.TopWordsPerTopic == 0 {
		cfg.Analysis.Topics.TopWordsPerTopic = DefaultTopWordsPerTopic
	}
	if cfg.Analysis.Topics.MinDocumentFrequency == 0 {
		cfg.Analysis.Topics.MinDocumentFrequency = DefaultMinDocumentFrequency
	}
	if cfg.Analysis.Topics.RandomSeed == 0 {
		cfg.Analysis.Topics.RandomSeed = DefaultRandomSeed
	}

	if cfg.Analysis.Flow.TurnWeight == 0 && cfg.Analysis.Flow.LengthWeight == 0 {
		cfg.Analysis.Flow.TurnWeight = DefaultTurnWeight
		cfg.Analysis.Flow.LengthWeight = DefaultLengthWeight
	}

	if cfg.Archive.Backend == "" {
		cfg.Archive.Backend = "sqlite"
	}
	if cfg.Archive.SQLite.Path == "" {
		cfg.Archive.SQLite.Path = "data/colloquy.db"
	}
	if cfg.Archive.SQLite.BusyTimeout == 0 {
		cfg.Archive.SQLite.BusyTimeout = 5 * time.Second
	}
	if cfg.Archive.Retention.RetentionDays == 0 {
		cfg.Archive.Retention.RetentionDays = 90
	}

	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = 500 * time.Millisecond
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = []string{".json"}
	}

	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = "info"
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = "text"
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = "127.0.0.1:9090"
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = "colloquy"
	}
}
