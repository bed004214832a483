package config

import "time"

// Config is the root configuration structure for Colloquy.
// It contains the analysis engine configuration plus the surrounding
// archive, watch, and telemetry settings.
type Config struct {
	// Analysis contains configuration for the conversation analysis engine.
	Analysis AnalysisConfig `yaml:"analysis"`

	// Archive contains configuration for persisted analysis run records.
	Archive ArchiveConfig `yaml:"archive"`

	// Watch contains configuration for the transcript directory watcher.
	Watch WatchConfig `yaml:"watch"`

	// Telemetry contains configuration for logging and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// AnalysisConfig contains the configuration consumed by the analysis engine.
// Every tunable the components read lives here so that results are a pure
// function of the conversation and this configuration.
type AnalysisConfig struct {
	// Sentiment configures the sentiment scorer.
	Sentiment SentimentConfig `yaml:"sentiment"`

	// Lexical configures the lexical analyzer.
	Lexical LexicalConfig `yaml:"lexical"`

	// Topics configures the topic modeler.
	Topics TopicsConfig `yaml:"topics"`

	// Flow configures the flow and engagement analyzer.
	Flow FlowConfig `yaml:"flow"`
}

// SentimentConfig contains the fixed thresholds mapping a compound score to
// a three-way label. A score above PositiveThreshold is positive, below
// NegativeThreshold is negative, otherwise neutral.
type SentimentConfig struct {
	// PositiveThreshold is the exclusive lower bound for the positive label.
	// Default: 0.05
	PositiveThreshold float64 `yaml:"positive_threshold"`

	// NegativeThreshold is the exclusive upper bound for the negative label.
	// Default: -0.05
	NegativeThreshold float64 `yaml:"negative_threshold"`
}

// LexicalConfig contains configuration for word-frequency analysis.
type LexicalConfig struct {
	// TopWords is the number of most frequent words reported overall and
	// per speaker.
	// Default: 10
	TopWords int `yaml:"top_words"`
}

// TopicsConfig contains configuration for the latent topic model.
type TopicsConfig struct {
	// TopicCount is the number of topics K to fit. If the usable vocabulary
	// is smaller than K, the modeler reduces K and reports the adjustment.
	// Default: 3
	TopicCount int `yaml:"topic_count"`

	// TopWordsPerTopic is the number of representative words reported per
	// topic, ranked by weight.
	// Default: 10
	TopWordsPerTopic int `yaml:"top_words_per_topic"`

	// MinDocumentFrequency excludes terms appearing in fewer than this many
	// utterances from the vocabulary.
	// Default: 2
	MinDocumentFrequency int `yaml:"min_document_frequency"`

	// RandomSeed seeds the Gibbs sampler so that repeated runs on the same
	// conversation produce identical results.
	// Default: 42
	RandomSeed int64 `yaml:"random_seed"`
}

// FlowConfig contains the engagement score weighting. The score is
// TurnWeight*turnRate + LengthWeight*lengthConsistency, where turnRate is the
// normalized turn-change rate and lengthConsistency is 1/(1+cv) of message
// word counts. The weights are documented, stable constants so results are
// reproducible across runs.
type FlowConfig struct {
	// TurnWeight is the weight of the normalized turn-change rate.
	// Default: 0.6
	TurnWeight float64 `yaml:"turn_weight"`

	// LengthWeight is the weight of message-length consistency.
	// Default: 0.4
	LengthWeight float64 `yaml:"length_weight"`
}

// ArchiveConfig contains configuration for analysis run persistence.
type ArchiveConfig struct {
	// Enabled controls whether analysis runs are recorded.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// Backend selects the storage backend: "sqlite" or "memory".
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// SQLite configures the SQLite backend.
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Retention configures pruning of old run records.
	Retention RetentionConfig `yaml:"retention"`
}

// SQLiteConfig contains configuration for the SQLite archive backend.
type SQLiteConfig struct {
	// Path is the database file path.
	// Default: "data/colloquy.db"
	Path string `yaml:"path"`

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// RetentionConfig contains configuration for archive retention pruning.
type RetentionConfig struct {
	// RetentionDays is the age in days beyond which run records are pruned.
	// Zero disables age-based pruning.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// MaxRecords caps the number of retained run records. Zero disables the cap.
	// Default: 0
	MaxRecords int `yaml:"max_records"`

	// PruneSchedule is a cron expression for scheduled pruning
	// (e.g., "0 3 * * *" for daily at 3 AM). Empty disables the scheduler.
	PruneSchedule string `yaml:"prune_schedule"`
}

// WatchConfig contains configuration for the transcript directory watcher.
type WatchConfig struct {
	// Path is the directory to watch for new conversation logs.
	Path string `yaml:"path"`

	// DebounceInterval is the quiet period after the last write event before
	// a file is analyzed.
	// Default: 500ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions is the list of file extensions to react to.
	// Default: [".json"]
	Extensions []string `yaml:"extensions"`
}

// TelemetryConfig contains observability configuration.
type TelemetryConfig struct {
	// Logging configures structured logging.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Default: "text"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the metrics endpoint is served (watch mode).
	// Default: false
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address for the /metrics endpoint.
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`

	// Namespace is the Prometheus metric namespace.
	// Default: "colloquy"
	Namespace string `yaml:"namespace"`
}
