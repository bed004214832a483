package topics

// TopicWord pairs a vocabulary word with its weight inside a topic.
type TopicWord struct {
	// Word is the normalized token.
	Word string `json:"word"`

	// Weight is the smoothed probability of the word under the topic.
	Weight float64 `json:"weight"`
}

// Topic is one inferred theme: its identifier and highest-weight words.
type Topic struct {
	// ID is the topic index, 0-based.
	ID int `json:"id"`

	// Words is the topic's top words, highest weight first.
	Words []TopicWord `json:"words"`
}

// DocumentTopics is the topic assignment for one utterance.
type DocumentTopics struct {
	// UtteranceIndex is the source utterance sequence index.
	UtteranceIndex int `json:"utterance_index"`

	// Dominant is the topic with the highest membership weight.
	Dominant int `json:"dominant"`

	// Membership is the per-topic weight distribution. It sums to 1.
	Membership []float64 `json:"membership"`
}

// Result is the topic model inferred from a conversation.
type Result struct {
	// TopicCount is the number of topics actually modeled.
	TopicCount int `json:"topic_count"`

	// Reduced reports that the requested topic count was lowered because
	// the vocabulary was too small to support it.
	Reduced bool `json:"reduced,omitempty"`

	// VocabularySize is the number of distinct words kept after the
	// document-frequency cutoff.
	VocabularySize int `json:"vocabulary_size"`

	// Topics lists the inferred topics in identifier order.
	Topics []Topic `json:"topics"`

	// Documents holds per-utterance topic assignments. Utterances with no
	// usable vocabulary after the cutoff are omitted.
	Documents []DocumentTopics `json:"documents"`
}
