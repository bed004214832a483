package sentiment

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"colloquy-hq/colloquy/pkg/config"
	"colloquy-hq/colloquy/pkg/conversation"
)

// Scoring constants. The normalization alpha and modifier factors follow the
// usual valence-lexicon conventions; the label thresholds come from config.
const (
	// normalizationAlpha squashes the summed valence via x/sqrt(x²+alpha).
	normalizationAlpha = 15.0

	// negationFactor is applied when a negator precedes a sentiment word.
	negationFactor = -0.74

	// exclamationBoost is the magnitude added per trailing "!", capped.
	exclamationBoost = 0.292
	maxExclamations  = 4

	// modifierWindow is how many preceding words are inspected for
	// negators and intensifiers.
	modifierWindow = 3
)

// Scorer assigns compound polarity scores to raw utterance text.
// A Scorer is stateless apart from its configuration and safe for
// concurrent use.
type Scorer struct {
	cfg config.SentimentConfig
}

// NewScorer creates a sentiment scorer with the given threshold configuration.
func NewScorer(cfg config.SentimentConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Analyze scores every utterance and aggregates per speaker.
func (s *Scorer) Analyze(conv *conversation.Conversation) (*Result, error) {
	if conv.Empty() {
		return nil, fmt.Errorf("conversation has no utterances")
	}

	res := &Result{
		PerUtterance: make([]UtteranceScore, 0, conv.Len()),
		PerSpeaker:   make(map[string]*SpeakerSentiment, len(conv.Speakers)),
	}

	var total float64
	for _, u := range conv.Utterances {
		score := s.Score(u.Text)
		res.PerUtterance = append(res.PerUtterance, UtteranceScore{
			Index:    u.Index,
			Speaker:  u.Speaker,
			Compound: score.Compound,
			Label:    score.Label,
		})

		sp, ok := res.PerSpeaker[u.Speaker]
		if !ok {
			sp = &SpeakerSentiment{Labels: make(map[Label]int, 3)}
			res.PerSpeaker[u.Speaker] = sp
		}
		sp.MessageCount++
		sp.MeanCompound += score.Compound
		sp.Labels[score.Label]++

		total += score.Compound
	}

	for _, sp := range res.PerSpeaker {
		sp.MeanCompound /= float64(sp.MessageCount)
	}
	res.OverallMean = total / float64(conv.Len())

	return res, nil
}

// Score computes the compound polarity of raw text and its label.
func (s *Scorer) Score(text string) Score {
	sum := s.rawValence(text)

	// Exclamation marks amplify whatever polarity is present.
	if sum != 0 {
		excl := strings.Count(text, "!")
		if excl > maxExclamations {
			excl = maxExclamations
		}
		boost := float64(excl) * exclamationBoost
		if sum > 0 {
			sum += boost
		} else {
			sum -= boost
		}
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)
	if compound > 1 {
		compound = 1
	} else if compound < -1 {
		compound = -1
	}

	return Score{Compound: compound, Label: s.LabelFor(compound)}
}

// LabelFor maps a compound score to its three-way label using the configured
// thresholds. It is a pure function of the score and the thresholds.
func (s *Scorer) LabelFor(compound float64) Label {
	switch {
	case compound > s.cfg.PositiveThreshold:
		return LabelPositive
	case compound < s.cfg.NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// rawValence sums lexicon valences over the text, adjusting each hit for
// negators and intensifiers in the preceding window.
func (s *Scorer) rawValence(text string) float64 {
	words := sentimentWords(text)

	var sum float64
	for i, w := range words {
		v, ok := valence[w]
		if !ok {
			continue
		}

		for dist := 1; dist <= modifierWindow && i-dist >= 0; dist++ {
			prev := words[i-dist]
			if _, neg := negators[prev]; neg {
				v *= negationFactor
				continue
			}
			if boost, ok := intensifiers[prev]; ok {
				// Modifiers further away contribute less.
				decay := 1.0 - 0.05*float64(dist-1)
				v *= 1 + boost*decay
			}
		}

		sum += v
	}
	return sum
}

// sentimentWords splits raw text into lowercased words with surrounding
// punctuation trimmed, preserving inner apostrophes for contractions.
func sentimentWords(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
		})
		w = strings.Trim(w, "'")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
