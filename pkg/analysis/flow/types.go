package flow

// LengthStats summarizes utterance lengths in words.
type LengthStats struct {
	// Mean is the mean utterance length.
	Mean float64 `json:"mean"`

	// StdDev is the population standard deviation of utterance lengths.
	StdDev float64 `json:"std_dev"`

	// Min is the shortest utterance length.
	Min int `json:"min"`

	// Max is the longest utterance length.
	Max int `json:"max"`
}

// ResponseTimes summarizes gaps between consecutive utterances, in seconds.
type ResponseTimes struct {
	// Mean is the mean gap.
	Mean float64 `json:"mean"`

	// Min is the shortest gap.
	Min float64 `json:"min"`

	// Max is the longest gap.
	Max float64 `json:"max"`
}

// Result is the conversational flow analysis of a conversation.
type Result struct {
	// TurnChanges counts adjacent utterance pairs with different speakers.
	TurnChanges int `json:"turn_changes"`

	// TurnRate is TurnChanges divided by the number of adjacent pairs.
	// Zero for single-utterance conversations.
	TurnRate float64 `json:"turn_rate"`

	// Lengths summarizes utterance lengths across the conversation.
	Lengths LengthStats `json:"lengths"`

	// PerSpeakerLengths summarizes utterance lengths by speaker.
	PerSpeakerLengths map[string]LengthStats `json:"per_speaker_lengths"`

	// Responses summarizes gaps between consecutive utterances. Nil when
	// the conversation has fewer than two utterances.
	Responses *ResponseTimes `json:"responses,omitempty"`

	// EngagementScore blends turn-taking balance with length consistency
	// into a single score in [0, 1].
	EngagementScore float64 `json:"engagement_score"`
}
