package flow

import (
	"fmt"
	"math"

	"colloquy-hq/colloquy/pkg/config"
	"colloquy-hq/colloquy/pkg/conversation"
)

// accumulator collects length statistics in one pass using running sums.
type accumulator struct {
	n     int
	sum   float64
	sumSq float64
	min   int
	max   int
}

func (a *accumulator) add(words int) {
	w := float64(words)
	if a.n == 0 || words < a.min {
		a.min = words
	}
	if words > a.max {
		a.max = words
	}
	a.n++
	a.sum += w
	a.sumSq += w * w
}

func (a *accumulator) stats() LengthStats {
	if a.n == 0 {
		return LengthStats{}
	}
	mean := a.sum / float64(a.n)
	variance := a.sumSq/float64(a.n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return LengthStats{
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Min:    a.min,
		Max:    a.max,
	}
}

// Analyzer measures turn-taking, message lengths, response times, and the
// blended engagement score.
type Analyzer struct {
	cfg config.FlowConfig
}

// NewAnalyzer creates a flow analyzer with the given weight configuration.
func NewAnalyzer(cfg config.FlowConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

// Analyze walks the conversation once, accumulating turn changes, length
// statistics, and inter-utterance gaps.
func (a *Analyzer) Analyze(conv *conversation.Conversation) (*Result, error) {
	if conv.Empty() {
		return nil, fmt.Errorf("conversation has no utterances")
	}

	overall := &accumulator{}
	perSpeaker := make(map[string]*accumulator, len(conv.Speakers))

	turnChanges := 0
	var gapSum, gapMin, gapMax float64
	gapCount := 0

	for i, u := range conv.Utterances {
		words := u.WordCount()
		overall.add(words)

		sp, ok := perSpeaker[u.Speaker]
		if !ok {
			sp = &accumulator{}
			perSpeaker[u.Speaker] = sp
		}
		sp.add(words)

		if i == 0 {
			continue
		}
		prev := conv.Utterances[i-1]
		if u.Speaker != prev.Speaker {
			turnChanges++
		}

		gap := u.Timestamp.Sub(prev.Timestamp).Seconds()
		if gapCount == 0 || gap < gapMin {
			gapMin = gap
		}
		if gap > gapMax {
			gapMax = gap
		}
		gapSum += gap
		gapCount++
	}

	res := &Result{
		TurnChanges:       turnChanges,
		Lengths:           overall.stats(),
		PerSpeakerLengths: make(map[string]LengthStats, len(perSpeaker)),
	}
	for speaker, acc := range perSpeaker {
		res.PerSpeakerLengths[speaker] = acc.stats()
	}

	if gapCount > 0 {
		res.TurnRate = float64(turnChanges) / float64(gapCount)
		res.Responses = &ResponseTimes{
			Mean: gapSum / float64(gapCount),
			Min:  gapMin,
			Max:  gapMax,
		}
	}

	res.EngagementScore = a.engagement(res.TurnRate, res.Lengths)
	return res, nil
}

// engagement blends turn-taking rate with length consistency. Consistency is
// 1/(1+cv) where cv is the coefficient of variation of utterance lengths, so
// evenly sized messages score higher than wildly uneven ones.
func (a *Analyzer) engagement(turnRate float64, lengths LengthStats) float64 {
	consistency := 1.0
	if lengths.Mean > 0 {
		consistency = 1.0 / (1.0 + lengths.StdDev/lengths.Mean)
	}

	score := a.cfg.TurnWeight*turnRate + a.cfg.LengthWeight*consistency
	if score > 1 {
		score = 1
	} else if score < 0 {
		score = 0
	}
	return score
}
