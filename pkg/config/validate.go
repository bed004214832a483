package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// FieldError represents a validation error for a specific configuration field.
type FieldError struct {
	// Field is the dotted path to the configuration field
	// (e.g., "analysis.topics.topic_count").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a configuration.
// It is surfaced before any analysis component runs.
type ValidationError struct {
	// Errors contains all validation errors found in the configuration.
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate validates the entire configuration and returns a ValidationError
// if any validation rules fail. All errors are collected and returned together.
func Validate(cfg *Config) error {
	var errs []FieldError

	errs = append(errs, validateAnalysis(&cfg.Analysis)...)
	errs = append(errs, validateArchive(&cfg.Archive)...)
	errs = append(errs, validateTelemetry(&cfg.Telemetry)...)

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// ValidateAnalysis validates only the analysis engine section. It lets
// callers that hold an AnalysisConfig directly reject bad settings before
// any analysis runs.
func ValidateAnalysis(cfg *AnalysisConfig) error {
	if errs := validateAnalysis(cfg); len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}

// validateAnalysis validates the analysis engine configuration.
func validateAnalysis(cfg *AnalysisConfig) []FieldError {
	var errs []FieldError

	if cfg.Sentiment.PositiveThreshold < -1 || cfg.Sentiment.PositiveThreshold > 1 {
		errs = append(errs, FieldError{
			Field:   "analysis.sentiment.positive_threshold",
			Message: "must be in [-1, 1]",
		})
	}
	if cfg.Sentiment.NegativeThreshold < -1 || cfg.Sentiment.NegativeThreshold > 1 {
		errs = append(errs, FieldError{
			Field:   "analysis.sentiment.negative_threshold",
			Message: "must be in [-1, 1]",
		})
	}
	if cfg.Sentiment.NegativeThreshold > cfg.Sentiment.PositiveThreshold {
		errs = append(errs, FieldError{
			Field:   "analysis.sentiment.negative_threshold",
			Message: "must not exceed positive_threshold",
		})
	}

	if cfg.Lexical.TopWords < 1 {
		errs = append(errs, FieldError{
			Field:   "analysis.lexical.top_words",
			Message: "must be at least 1",
		})
	}

	if cfg.Topics.TopicCount < 1 {
		errs = append(errs, FieldError{
			Field:   "analysis.topics.topic_count",
			Message: "must be at least 1",
		})
	}
	if cfg.Topics.TopWordsPerTopic < 1 {
		errs = append(errs, FieldError{
			Field:   "analysis.topics.top_words_per_topic",
			Message: "must be at least 1",
		})
	}
	if cfg.Topics.MinDocumentFrequency < 1 {
		errs = append(errs, FieldError{
			Field:   "analysis.topics.min_document_frequency",
			Message: "must be at least 1",
		})
	}

	if cfg.Flow.TurnWeight < 0 {
		errs = append(errs, FieldError{
			Field:   "analysis.flow.turn_weight",
			Message: "must not be negative",
		})
	}
	if cfg.Flow.LengthWeight < 0 {
		errs = append(errs, FieldError{
			Field:   "analysis.flow.length_weight",
			Message: "must not be negative",
		})
	}
	if cfg.Flow.TurnWeight+cfg.Flow.LengthWeight <= 0 {
		errs = append(errs, FieldError{
			Field:   "analysis.flow",
			Message: "turn_weight and length_weight must not both be zero",
		})
	}

	return errs
}

// validateArchive validates the archive configuration.
func validateArchive(cfg *ArchiveConfig) []FieldError {
	var errs []FieldError

	switch cfg.Backend {
	case "sqlite", "memory":
	default:
		errs = append(errs, FieldError{
			Field:   "archive.backend",
			Message: fmt.Sprintf("unknown backend %q (expected sqlite or memory)", cfg.Backend),
		})
	}

	if cfg.Backend == "sqlite" && cfg.SQLite.Path == "" {
		errs = append(errs, FieldError{
			Field:   "archive.sqlite.path",
			Message: "path is required for the sqlite backend",
		})
	}

	if cfg.Retention.RetentionDays < 0 {
		errs = append(errs, FieldError{
			Field:   "archive.retention.retention_days",
			Message: "must not be negative",
		})
	}
	if cfg.Retention.MaxRecords < 0 {
		errs = append(errs, FieldError{
			Field:   "archive.retention.max_records",
			Message: "must not be negative",
		})
	}
	if cfg.Retention.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Retention.PruneSchedule); err != nil {
			errs = append(errs, FieldError{
				Field:   "archive.retention.prune_schedule",
				Message: fmt.Sprintf("invalid cron expression: %v", err),
			})
		}
	}

	return errs
}

// validateTelemetry validates the telemetry configuration.
func validateTelemetry(cfg *TelemetryConfig) []FieldError {
	var errs []FieldError

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.level",
			Message: fmt.Sprintf("unknown level %q (expected debug, info, warn, or error)", cfg.Logging.Level),
		})
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		errs = append(errs, FieldError{
			Field:   "telemetry.logging.format",
			Message: fmt.Sprintf("unknown format %q (expected json or text)", cfg.Logging.Format),
		})
	}

	if cfg.Metrics.Enabled && cfg.Metrics.ListenAddress == "" {
		errs = append(errs, FieldError{
			Field:   "telemetry.metrics.listen_address",
			Message: "listen address is required when metrics are enabled",
		})
	}

	return errs
}
