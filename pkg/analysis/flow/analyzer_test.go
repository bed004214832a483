package flow

import (
	"math"
	"testing"
	"time"

	"colloquy-hq/colloquy/pkg/config"
	"colloquy-hq/colloquy/pkg/conversation"
)

func testConfig() config.FlowConfig {
	return config.FlowConfig{
		TurnWeight:   config.DefaultTurnWeight,
		LengthWeight: config.DefaultLengthWeight,
	}
}

func buildConversation(speakers []string, texts []string, gap time.Duration) *conversation.Conversation {
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	utterances := make([]conversation.Utterance, len(speakers))
	seen := make(map[string]bool)
	var distinct []string
	for i := range speakers {
		utterances[i] = conversation.Utterance{
			Speaker:   speakers[i],
			Text:      texts[i],
			Timestamp: base.Add(time.Duration(i) * gap),
			Index:     i,
		}
		if !seen[speakers[i]] {
			seen[speakers[i]] = true
			distinct = append(distinct, speakers[i])
		}
	}
	return &conversation.Conversation{Utterances: utterances, Speakers: distinct}
}

func TestAnalyzer_Alternating(t *testing.T) {
	conv := buildConversation(
		[]string{"ai1", "ai2", "ai1", "ai2"},
		[]string{"one two three", "four five six", "seven eight nine", "ten eleven twelve"},
		5*time.Second,
	)

	res, err := NewAnalyzer(testConfig()).Analyze(conv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TurnChanges != 3 {
		t.Errorf("expected 3 turn changes, got %d", res.TurnChanges)
	}
	if res.TurnRate != 1.0 {
		t.Errorf("expected turn rate 1.0, got %v", res.TurnRate)
	}
	if res.Lengths.Mean != 3.0 || res.Lengths.StdDev != 0 {
		t.Errorf("expected uniform length 3.0, got mean %v stddev %v",
			res.Lengths.Mean, res.Lengths.StdDev)
	}
	if res.Lengths.Min != 3 || res.Lengths.Max != 3 {
		t.Errorf("expected min/max 3/3, got %d/%d", res.Lengths.Min, res.Lengths.Max)
	}

	// Perfect alternation with uniform lengths is maximal engagement.
	want := config.DefaultTurnWeight*1.0 + config.DefaultLengthWeight*1.0
	if math.Abs(res.EngagementScore-want) > 1e-9 {
		t.Errorf("expected engagement %v, got %v", want, res.EngagementScore)
	}

	if res.Responses == nil {
		t.Fatal("expected response times")
	}
	if res.Responses.Mean != 5.0 || res.Responses.Min != 5.0 || res.Responses.Max != 5.0 {
		t.Errorf("expected uniform 5s gaps, got %+v", res.Responses)
	}
}

func TestAnalyzer_SingleSpeakerRun(t *testing.T) {
	conv := buildConversation(
		[]string{"ai1", "ai1", "ai1", "ai1"},
		[]string{"a", "a b", "a b c", "a b c d"},
		time.Second,
	)

	res, err := NewAnalyzer(testConfig()).Analyze(conv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.TurnChanges != 0 {
		t.Errorf("expected 0 turn changes, got %d", res.TurnChanges)
	}
	if res.TurnRate != 0 {
		t.Errorf("expected turn rate 0, got %v", res.TurnRate)
	}
	if len(res.PerSpeakerLengths) != 1 {
		t.Errorf("expected 1 speaker, got %d", len(res.PerSpeakerLengths))
	}

	// Engagement draws only from length consistency when no turns change.
	if res.EngagementScore >= config.DefaultLengthWeight {
		t.Errorf("expected engagement below %v, got %v",
			config.DefaultLengthWeight, res.EngagementScore)
	}
}

func TestAnalyzer_TurnChangeBounds(t *testing.T) {
	tests := []struct {
		name     string
		speakers []string
		want     int
	}{
		{"single utterance", []string{"ai1"}, 0},
		{"two same", []string{"ai1", "ai1"}, 0},
		{"two different", []string{"ai1", "ai2"}, 1},
		{"runs", []string{"ai1", "ai1", "ai2", "ai2", "ai1"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			texts := make([]string, len(tt.speakers))
			for i := range texts {
				texts[i] = "hello there"
			}
			conv := buildConversation(tt.speakers, texts, time.Second)

			res, err := NewAnalyzer(testConfig()).Analyze(conv)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.TurnChanges != tt.want {
				t.Errorf("expected %d turn changes, got %d", tt.want, res.TurnChanges)
			}
			if res.TurnChanges > len(tt.speakers)-1 {
				t.Errorf("turn changes %d exceed message count - 1", res.TurnChanges)
			}
		})
	}
}

func TestAnalyzer_PerSpeakerLengths(t *testing.T) {
	conv := buildConversation(
		[]string{"ai1", "ai2", "ai1", "ai2"},
		[]string{"one", "one two three four", "one two three", "one two"},
		time.Second,
	)

	res, err := NewAnalyzer(testConfig()).Analyze(conv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ai1 := res.PerSpeakerLengths["ai1"]
	if ai1.Mean != 2.0 || ai1.Min != 1 || ai1.Max != 3 {
		t.Errorf("ai1: expected mean 2 min 1 max 3, got %+v", ai1)
	}
	ai2 := res.PerSpeakerLengths["ai2"]
	if ai2.Mean != 3.0 || ai2.Min != 2 || ai2.Max != 4 {
		t.Errorf("ai2: expected mean 3 min 2 max 4, got %+v", ai2)
	}
}

func TestAnalyzer_SingleUtterance(t *testing.T) {
	conv := buildConversation([]string{"ai1"}, []string{"hello world"}, time.Second)

	res, err := NewAnalyzer(testConfig()).Analyze(conv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Responses != nil {
		t.Error("expected no response times for a single utterance")
	}
	if res.TurnRate != 0 {
		t.Errorf("expected turn rate 0, got %v", res.TurnRate)
	}
	if res.EngagementScore < 0 || res.EngagementScore > 1 {
		t.Errorf("engagement %v out of [0, 1]", res.EngagementScore)
	}
}

func TestAnalyzer_Empty(t *testing.T) {
	if _, err := NewAnalyzer(testConfig()).Analyze(&conversation.Conversation{}); err == nil {
		t.Error("expected error for empty conversation")
	}
}
