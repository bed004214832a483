package normalize

import (
	"strings"
	"unicode"

	"colloquy-hq/colloquy/pkg/conversation"
)

// NormalizedUtterance is the normalized form of one utterance. It is never
// mutated after creation and is recomputed fresh for every analysis run.
type NormalizedUtterance struct {
	// SourceIndex is the Index of the originating utterance.
	SourceIndex int

	// Speaker is the originating speaker identifier.
	Speaker string

	// Tokens is the ordered sequence of normalized tokens.
	Tokens []string

	// TokenSet is the set of distinct tokens.
	TokenSet map[string]struct{}
}

// Normalizer tokenizes, lowercases, strips stop-words and punctuation, and
// stems utterance text. A Normalizer is stateless and safe for concurrent use.
type Normalizer struct{}

// New creates a new Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// NormalizeUtterance normalizes a single utterance.
func (n *Normalizer) NormalizeUtterance(u conversation.Utterance) NormalizedUtterance {
	tokens := n.NormalizeText(u.Text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return NormalizedUtterance{
		SourceIndex: u.Index,
		Speaker:     u.Speaker,
		Tokens:      tokens,
		TokenSet:    set,
	}
}

// NormalizeConversation normalizes every utterance in order.
func (n *Normalizer) NormalizeConversation(conv *conversation.Conversation) []NormalizedUtterance {
	out := make([]NormalizedUtterance, 0, conv.Len())
	for _, u := range conv.Utterances {
		out = append(out, n.NormalizeUtterance(u))
	}
	return out
}

// NormalizeText returns the normalized token sequence for raw text.
// Empty text returns an empty (nil) sequence, never an error.
func (n *Normalizer) NormalizeText(text string) []string {
	if text == "" {
		return nil
	}

	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})

	var tokens []string
	for _, f := range fields {
		tok := strings.Trim(f, "'")
		if tok == "" {
			continue
		}
		if IsStopword(tok) {
			continue
		}
		tokens = append(tokens, stem(tok))
	}
	return tokens
}

// stem reduces common English inflections with conservative suffix rules.
// Short words are left alone to avoid mangling roots.
func stem(word string) string {
	switch {
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ing") && len(word) > 5:
		return word[:len(word)-3]
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") &&
		!strings.HasSuffix(word, "us") && len(word) > 3:
		return word[:len(word)-1]
	}
	return word
}
