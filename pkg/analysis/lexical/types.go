package lexical

// WordCount pairs a normalized token with its occurrence count.
type WordCount struct {
	// Word is the normalized token.
	Word string `json:"word"`

	// Count is the number of occurrences.
	Count int `json:"count"`
}

// SpeakerLexical holds frequency statistics for one speaker.
type SpeakerLexical struct {
	// TotalTokens is the number of tokens contributed by this speaker.
	TotalTokens int `json:"total_tokens"`

	// VocabularySize is the number of distinct tokens used by this speaker.
	VocabularySize int `json:"vocabulary_size"`

	// TopWords is the speaker's most frequent tokens, highest count first.
	TopWords []WordCount `json:"top_words"`
}

// Result is the lexical analysis of a whole conversation.
type Result struct {
	// TotalTokens is the token count across all utterances.
	TotalTokens int `json:"total_tokens"`

	// VocabularySize is the number of distinct tokens overall.
	VocabularySize int `json:"vocabulary_size"`

	// TopWords is the most frequent tokens overall, highest count first.
	TopWords []WordCount `json:"top_words"`

	// PerSpeaker holds frequency statistics by speaker identifier.
	PerSpeaker map[string]*SpeakerLexical `json:"per_speaker"`
}
