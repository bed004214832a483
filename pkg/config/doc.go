// Package config provides configuration loading, validation, and defaults
// for Colloquy.
//
// Configuration is defined in YAML and loaded with LoadConfig. Defaults are
// applied for any omitted field, then the whole configuration is validated;
// validation collects every problem into a single ValidationError rather than
// stopping at the first. Environment variables of the form COLLOQUY_SECTION_FIELD
// (e.g., COLLOQUY_TOPICS_TOPIC_COUNT) override file values when loading with
// LoadConfigWithEnvOverrides.
//
// Example configuration:
//
//	analysis:
//	  sentiment:
//	    positive_threshold: 0.05
//	    negative_threshold: -0.05
//	  lexical:
//	    top_words: 10
//	  topics:
//	    topic_count: 3
//	    top_words_per_topic: 10
//	    min_document_frequency: 2
//	    random_seed: 42
//	  flow:
//	    turn_weight: 0.6
//	    length_weight: 0.4
//	archive:
//	  enabled: true
//	  backend: sqlite
//	  sqlite:
//	    path: data/colloquy.db
//	  retention:
//	    retention_days: 90
//	    prune_schedule: "0 3 * * *"
//	telemetry:
//	  logging:
//	    level: info
//	    format: text
package config
