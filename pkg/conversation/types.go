package conversation

import (
	"strings"
	"time"
)

// Utterance is a single turn of text attributed to a speaker.
// Utterances are immutable once loaded and ordered by Index.
type Utterance struct {
	// Speaker is the speaker identifier (e.g., "ai1", "ai2").
	Speaker string `json:"speaker"`

	// Text is the raw message text.
	Text string `json:"text"`

	// Timestamp is when the utterance was produced.
	Timestamp time.Time `json:"timestamp"`

	// Index is the position of the utterance in the conversation.
	// Strictly increasing; assigned by the loader.
	Index int `json:"index"`
}

// WordCount returns the number of whitespace-separated words in the text.
func (u Utterance) WordCount() int {
	return len(strings.Fields(u.Text))
}

// Conversation is an ordered sequence of utterances between two speakers.
// Speakers are not assumed to alternate; runs by the same speaker are valid.
type Conversation struct {
	// Utterances in Index order.
	Utterances []Utterance `json:"utterances"`

	// Speakers lists the distinct speaker identifiers in order of first
	// appearance. At most two.
	Speakers []string `json:"speakers"`
}

// Len returns the number of utterances.
func (c *Conversation) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Utterances)
}

// Empty reports whether the conversation has no utterances.
func (c *Conversation) Empty() bool { return c.Len() == 0 }

// Duration returns the time between the first and last utterance.
// Zero for conversations with fewer than two utterances.
func (c *Conversation) Duration() time.Duration {
	if c.Len() < 2 {
		return 0
	}
	return c.Utterances[len(c.Utterances)-1].Timestamp.Sub(c.Utterances[0].Timestamp)
}

// MessageCounts returns the number of utterances per speaker.
func (c *Conversation) MessageCounts() map[string]int {
	counts := make(map[string]int, len(c.Speakers))
	for _, u := range c.Utterances {
		counts[u.Speaker]++
	}
	return counts
}
