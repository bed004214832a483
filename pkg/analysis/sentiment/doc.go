// Package sentiment assigns a polarity score to each utterance and
// aggregates sentiment per speaker.
//
// Scoring is rule-based: a valence lexicon combined with order-aware
// handling of negators ("not great") and intensifiers ("really great").
// It operates on raw utterance text, not normalized tokens, because negation
// and emphasis depend on word order and punctuation. The summed valence is
// squashed into a compound score in [-1, 1], and a three-way label is derived
// from the configured thresholds:
//
//	compound > positive_threshold  => positive
//	compound < negative_threshold  => negative
//	otherwise                      => neutral
//
// Label assignment is a pure function of the score and the thresholds.
package sentiment
