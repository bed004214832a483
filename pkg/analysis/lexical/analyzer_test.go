package lexical

import (
	"testing"

	"colloquy-hq/colloquy/pkg/analysis/normalize"
	"colloquy-hq/colloquy/pkg/config"
)

func utterance(index int, speaker string, tokens ...string) normalize.NormalizedUtterance {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return normalize.NormalizedUtterance{
		SourceIndex: index,
		Speaker:     speaker,
		Tokens:      tokens,
		TokenSet:    set,
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	analyzer := NewAnalyzer(config.LexicalConfig{TopWords: 3})

	utterances := []normalize.NormalizedUtterance{
		utterance(0, "ai1", "quantum", "entangl", "physic"),
		utterance(1, "ai2", "quantum", "theory"),
		utterance(2, "ai1", "quantum", "entangl"),
		utterance(3, "ai2", "theory", "physic"),
	}

	res, err := analyzer.Analyze(utterances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TotalTokens != 9 {
		t.Errorf("expected 9 total tokens, got %d", res.TotalTokens)
	}
	if res.VocabularySize != 4 {
		t.Errorf("expected vocabulary size 4, got %d", res.VocabularySize)
	}

	want := []WordCount{
		{Word: "quantum", Count: 3},
		{Word: "entangl", Count: 2},
		{Word: "physic", Count: 2},
	}
	if len(res.TopWords) != len(want) {
		t.Fatalf("expected %d top words, got %d: %v", len(want), len(res.TopWords), res.TopWords)
	}
	for i, w := range want {
		if res.TopWords[i] != w {
			t.Errorf("top word %d: expected %+v, got %+v", i, w, res.TopWords[i])
		}
	}

	ai1 := res.PerSpeaker["ai1"]
	if ai1 == nil {
		t.Fatal("missing ai1 per-speaker stats")
	}
	if ai1.TotalTokens != 5 || ai1.VocabularySize != 3 {
		t.Errorf("ai1: expected 5 tokens / 3 vocab, got %d / %d", ai1.TotalTokens, ai1.VocabularySize)
	}
	if ai1.TopWords[0].Word != "quantum" || ai1.TopWords[0].Count != 2 {
		t.Errorf("ai1: expected top word quantum x2, got %+v", ai1.TopWords[0])
	}

	ai2 := res.PerSpeaker["ai2"]
	if ai2 == nil || ai2.TotalTokens != 4 || ai2.VocabularySize != 3 {
		t.Fatalf("ai2: expected 4 tokens / 3 vocab, got %+v", ai2)
	}
}

func TestAnalyzer_TokenConservation(t *testing.T) {
	analyzer := NewAnalyzer(config.LexicalConfig{TopWords: 100})

	utterances := []normalize.NormalizedUtterance{
		utterance(0, "ai1", "alpha", "beta", "alpha"),
		utterance(1, "ai2", "gamma", "beta"),
	}

	res, err := analyzer.Analyze(utterances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var sum int
	for _, wc := range res.TopWords {
		sum += wc.Count
	}
	if sum != res.TotalTokens {
		t.Errorf("counts sum to %d, expected total %d", sum, res.TotalTokens)
	}
	if res.VocabularySize > res.TotalTokens {
		t.Errorf("vocabulary %d exceeds total tokens %d", res.VocabularySize, res.TotalTokens)
	}

	var perSpeakerSum int
	for _, sp := range res.PerSpeaker {
		perSpeakerSum += sp.TotalTokens
	}
	if perSpeakerSum != res.TotalTokens {
		t.Errorf("per-speaker totals sum to %d, expected %d", perSpeakerSum, res.TotalTokens)
	}
}

func TestAnalyzer_TieBreakFirstSeen(t *testing.T) {
	analyzer := NewAnalyzer(config.LexicalConfig{TopWords: 4})

	// All counts equal; order must follow first appearance.
	utterances := []normalize.NormalizedUtterance{
		utterance(0, "ai1", "zebra", "apple", "mango"),
	}

	res, err := analyzer.Analyze(utterances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"zebra", "apple", "mango"}
	for i, w := range want {
		if res.TopWords[i].Word != w {
			t.Errorf("position %d: expected %q, got %q", i, w, res.TopWords[i].Word)
		}
	}
}

func TestAnalyzer_TopWordsTruncated(t *testing.T) {
	analyzer := NewAnalyzer(config.LexicalConfig{TopWords: 2})

	utterances := []normalize.NormalizedUtterance{
		utterance(0, "ai1", "one", "two", "three", "four", "five"),
	}

	res, err := analyzer.Analyze(utterances)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.TopWords) != 2 {
		t.Errorf("expected 2 top words, got %d", len(res.TopWords))
	}
	if res.VocabularySize != 5 {
		t.Errorf("truncation must not affect vocabulary size, got %d", res.VocabularySize)
	}
}

func TestAnalyzer_NoTokens(t *testing.T) {
	analyzer := NewAnalyzer(config.LexicalConfig{TopWords: 10})

	utterances := []normalize.NormalizedUtterance{
		utterance(0, "ai1"),
		utterance(1, "ai2"),
	}

	if _, err := analyzer.Analyze(utterances); err == nil {
		t.Error("expected error when no tokens remain")
	}
	if _, err := analyzer.Analyze(nil); err == nil {
		t.Error("expected error for empty input")
	}
}
