package analysis

import (
	"colloquy-hq/colloquy/pkg/analysis/flow"
	"colloquy-hq/colloquy/pkg/analysis/lexical"
	"colloquy-hq/colloquy/pkg/analysis/sentiment"
	"colloquy-hq/colloquy/pkg/analysis/topics"
)

// Component names used as keys in Result.Components.
const (
	ComponentSentiment = "sentiment"
	ComponentLexical   = "lexical"
	ComponentTopics    = "topics"
	ComponentFlow      = "flow"
)

// ComponentStatus records whether one analysis component produced output.
type ComponentStatus struct {
	// Available reports that the component ran and its section is present.
	Available bool `json:"available"`

	// Reason explains why the component is unavailable. Empty when
	// Available is true.
	Reason string `json:"reason,omitempty"`
}

// Stats holds basic conversation statistics, computed independently of the
// analysis components.
type Stats struct {
	// TotalMessages is the number of utterances.
	TotalMessages int `json:"total_messages"`

	// PerSpeaker maps speaker identifiers to message counts.
	PerSpeaker map[string]int `json:"per_speaker"`

	// AverageMessageWords is the mean utterance length in words.
	AverageMessageWords float64 `json:"average_message_words"`

	// DurationSeconds spans the first to the last utterance timestamp.
	DurationSeconds float64 `json:"duration_seconds"`
}

// Result is the full analysis of one conversation. Component sections are
// nil when the corresponding component was unavailable; Components always
// carries an entry per component saying why.
//
// A Result is a pure function of the conversation and the configuration.
// It carries no run identifiers or wall-clock timestamps, so analyzing the
// same input twice yields byte-identical serialized results.
type Result struct {
	// Stats holds basic conversation statistics.
	Stats Stats `json:"stats"`

	// Sentiment is the sentiment section, nil if unavailable.
	Sentiment *sentiment.Result `json:"sentiment,omitempty"`

	// Lexical is the word-frequency section, nil if unavailable.
	Lexical *lexical.Result `json:"lexical,omitempty"`

	// Topics is the topic model section, nil if unavailable.
	Topics *topics.Result `json:"topics,omitempty"`

	// Flow is the conversational flow section, nil if unavailable.
	Flow *flow.Result `json:"flow,omitempty"`

	// Components records availability per component.
	Components map[string]ComponentStatus `json:"components"`
}
