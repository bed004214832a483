package lexical

import (
	"fmt"
	"sort"

	"colloquy-hq/colloquy/pkg/analysis/normalize"
	"colloquy-hq/colloquy/pkg/config"
)

// counter tallies token occurrences while remembering first-seen order so
// that equal counts rank deterministically.
type counter struct {
	counts map[string]int
	order  map[string]int
	total  int
}

func newCounter() *counter {
	return &counter{
		counts: make(map[string]int),
		order:  make(map[string]int),
	}
}

func (c *counter) add(token string) {
	if _, seen := c.counts[token]; !seen {
		c.order[token] = len(c.order)
	}
	c.counts[token]++
	c.total++
}

// top returns the n most frequent tokens. Ties break toward the token that
// appeared first in the conversation.
func (c *counter) top(n int) []WordCount {
	out := make([]WordCount, 0, len(c.counts))
	for w, count := range c.counts {
		out = append(out, WordCount{Word: w, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return c.order[out[i].Word] < c.order[out[j].Word]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Analyzer computes token frequency statistics over normalized utterances.
// An Analyzer is stateless apart from its configuration.
type Analyzer struct {
	cfg config.LexicalConfig
}

// NewAnalyzer creates a lexical analyzer with the given configuration.
func NewAnalyzer(cfg config.LexicalConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze builds overall and per-speaker frequency tables from the
// normalized utterances. It requires at least one token in the conversation.
func (a *Analyzer) Analyze(utterances []normalize.NormalizedUtterance) (*Result, error) {
	overall := newCounter()
	perSpeaker := make(map[string]*counter)

	for _, u := range utterances {
		sp, ok := perSpeaker[u.Speaker]
		if !ok {
			sp = newCounter()
			perSpeaker[u.Speaker] = sp
		}
		for _, tok := range u.Tokens {
			overall.add(tok)
			sp.add(tok)
		}
	}

	if overall.total == 0 {
		return nil, fmt.Errorf("no tokens remain after normalization")
	}

	res := &Result{
		TotalTokens:    overall.total,
		VocabularySize: len(overall.counts),
		TopWords:       overall.top(a.cfg.TopWords),
		PerSpeaker:     make(map[string]*SpeakerLexical, len(perSpeaker)),
	}
	for speaker, c := range perSpeaker {
		res.PerSpeaker[speaker] = &SpeakerLexical{
			TotalTokens:    c.total,
			VocabularySize: len(c.counts),
			TopWords:       c.top(a.cfg.TopWords),
		}
	}
	return res, nil
}
