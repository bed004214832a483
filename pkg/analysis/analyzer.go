package analysis

import (
	"fmt"
	"log/slog"

	"colloquy-hq/colloquy/pkg/analysis/flow"
	"colloquy-hq/colloquy/pkg/analysis/lexical"
	"colloquy-hq/colloquy/pkg/analysis/normalize"
	"colloquy-hq/colloquy/pkg/analysis/sentiment"
	"colloquy-hq/colloquy/pkg/analysis/topics"
	"colloquy-hq/colloquy/pkg/config"
	"colloquy-hq/colloquy/pkg/conversation"
)

// Analyzer orchestrates the analysis components over one conversation.
// Components run independently; a component that cannot produce output is
// recorded as unavailable instead of failing the run.
type Analyzer struct {
	normalizer *normalize.Normalizer
	sentiment  *sentiment.Scorer
	lexical    *lexical.Analyzer
	topics     *topics.Modeler
	flow       *flow.Analyzer
	logger     *slog.Logger
}

// New creates an analyzer from the given configuration. The configuration is
// validated up front; a misconfigured engine never partially runs.
func New(cfg *config.AnalysisConfig, logger *slog.Logger) (*Analyzer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("analysis config is nil")
	}
	if err := config.ValidateAnalysis(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		normalizer: normalize.New(),
		sentiment:  sentiment.NewScorer(cfg.Sentiment),
		lexical:    lexical.NewAnalyzer(cfg.Lexical),
		topics:     topics.NewModeler(cfg.Topics),
		flow:       flow.NewAnalyzer(cfg.Flow),
		logger:     logger,
	}, nil
}

// Analyze runs every component over the conversation. The returned error is
// non-nil only for unusable input; component failures degrade to
// unavailability entries in Result.Components.
func (a *Analyzer) Analyze(conv *conversation.Conversation) (*Result, error) {
	if conv == nil {
		return nil, conversation.NewInputError("conversation is nil", nil)
	}

	res := &Result{
		Stats:      basicStats(conv),
		Components: make(map[string]ComponentStatus, 4),
	}

	// Normalization happens once and feeds the token-based components.
	normalized := a.normalizer.NormalizeConversation(conv)

	a.run(res, ComponentSentiment, func() error {
		out, err := a.sentiment.Analyze(conv)
		if err != nil {
			return err
		}
		res.Sentiment = out
		return nil
	})

	a.run(res, ComponentLexical, func() error {
		out, err := a.lexical.Analyze(normalized)
		if err != nil {
			return err
		}
		res.Lexical = out
		return nil
	})

	a.run(res, ComponentTopics, func() error {
		out, err := a.topics.Analyze(normalized)
		if err != nil {
			return err
		}
		res.Topics = out
		return nil
	})

	a.run(res, ComponentFlow, func() error {
		out, err := a.flow.Analyze(conv)
		if err != nil {
			return err
		}
		res.Flow = out
		return nil
	})

	return res, nil
}

// run executes one component and records its availability.
func (a *Analyzer) run(res *Result, name string, fn func() error) {
	if err := fn(); err != nil {
		a.logger.Warn("analysis component unavailable",
			slog.String("component", name),
			slog.String("reason", err.Error()))
		res.Components[name] = ComponentStatus{Available: false, Reason: err.Error()}
		return
	}
	res.Components[name] = ComponentStatus{Available: true}
}

// basicStats computes conversation statistics that need no component.
func basicStats(conv *conversation.Conversation) Stats {
	stats := Stats{
		TotalMessages: conv.Len(),
		PerSpeaker:    conv.MessageCounts(),
	}
	if conv.Empty() {
		return stats
	}

	var words int
	for _, u := range conv.Utterances {
		words += u.WordCount()
	}
	stats.AverageMessageWords = float64(words) / float64(conv.Len())
	stats.DurationSeconds = conv.Duration().Seconds()
	return stats
}
