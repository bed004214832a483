package sentiment

// Label is the three-way sentiment classification of a compound score.
type Label string

const (
	// LabelPositive indicates compound > positive threshold.
	LabelPositive Label = "positive"
	// LabelNeutral indicates a compound between the thresholds.
	LabelNeutral Label = "neutral"
	// LabelNegative indicates compound < negative threshold.
	LabelNegative Label = "negative"
)

// Score is the polarity of a single piece of text.
type Score struct {
	// Compound is the normalized polarity score in [-1, 1].
	Compound float64 `json:"compound"`

	// Label is the three-way classification of Compound.
	Label Label `json:"label"`
}

// UtteranceScore is the sentiment of one utterance in the conversation.
type UtteranceScore struct {
	// Index is the utterance sequence index.
	Index int `json:"index"`

	// Speaker is the utterance speaker.
	Speaker string `json:"speaker"`

	// Compound is the polarity score in [-1, 1].
	Compound float64 `json:"compound"`

	// Label is the three-way classification.
	Label Label `json:"label"`
}

// SpeakerSentiment aggregates sentiment for one speaker.
type SpeakerSentiment struct {
	// MessageCount is the number of utterances by this speaker.
	MessageCount int `json:"message_count"`

	// MeanCompound is the mean compound score across the speaker's utterances.
	MeanCompound float64 `json:"mean_compound"`

	// Labels is the label distribution across the speaker's utterances.
	Labels map[Label]int `json:"labels"`
}

// Result is the sentiment analysis of a whole conversation: the per-utterance
// trajectory plus per-speaker aggregates.
type Result struct {
	// PerUtterance is the sentiment trajectory in sequence order.
	PerUtterance []UtteranceScore `json:"per_utterance"`

	// PerSpeaker aggregates sentiment by speaker identifier.
	PerSpeaker map[string]*SpeakerSentiment `json:"per_speaker"`

	// OverallMean is the mean compound score across all utterances.
	OverallMean float64 `json:"overall_mean"`
}
