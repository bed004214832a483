package topics

import (
	"fmt"
	"math/rand"
	"sort"

	"colloquy-hq/colloquy/pkg/analysis/normalize"
	"colloquy-hq/colloquy/pkg/config"
)

// Sampling constants. Alpha follows the common 50/K heuristic.
const (
	betaPrior    = 0.01
	gibbsSweeps  = 200
	minUsableDoc = 2
)

// document is one utterance converted to vocabulary word identifiers.
type document struct {
	utteranceIndex int
	words          []int
}

// corpus is the vectorized conversation: the kept vocabulary and the
// utterances that still have usable words after the frequency cutoff.
type corpus struct {
	vocab []string
	docs  []document
}

// Modeler infers latent topics from normalized utterances using LDA with
// collapsed Gibbs sampling. Inference is deterministic for a given seed.
type Modeler struct {
	cfg config.TopicsConfig
}

// NewModeler creates a topic modeler with the given configuration.
func NewModeler(cfg config.TopicsConfig) *Modeler {
	return &Modeler{cfg: cfg}
}

// Analyze infers topics over the conversation. Each utterance is one
// document. Words appearing in fewer than MinDocumentFrequency utterances
// are dropped before inference; utterances left with no words are excluded
// from the model and carry no topic assignment in the result.
func (m *Modeler) Analyze(utterances []normalize.NormalizedUtterance) (*Result, error) {
	c, err := m.vectorize(utterances)
	if err != nil {
		return nil, err
	}

	k := m.cfg.TopicCount
	reduced := false
	if k > len(c.vocab) {
		k = len(c.vocab)
		reduced = true
	}

	res := m.sample(c, k)
	res.Reduced = reduced
	return res, nil
}

// vectorize applies the document-frequency cutoff and maps each utterance to
// vocabulary identifiers. Vocabulary order follows first appearance.
func (m *Modeler) vectorize(utterances []normalize.NormalizedUtterance) (*corpus, error) {
	docFreq := make(map[string]int)
	for _, u := range utterances {
		for tok := range u.TokenSet {
			docFreq[tok]++
		}
	}

	ids := make(map[string]int)
	var vocab []string
	keep := func(tok string) (int, bool) {
		if docFreq[tok] < m.cfg.MinDocumentFrequency {
			return 0, false
		}
		id, ok := ids[tok]
		if !ok {
			id = len(vocab)
			ids[tok] = id
			vocab = append(vocab, tok)
		}
		return id, true
	}

	var docs []document
	for _, u := range utterances {
		var words []int
		for _, tok := range u.Tokens {
			if id, ok := keep(tok); ok {
				words = append(words, id)
			}
		}
		if len(words) > 0 {
			docs = append(docs, document{utteranceIndex: u.SourceIndex, words: words})
		}
	}

	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary is empty after document-frequency cutoff")
	}
	if len(docs) < minUsableDoc {
		return nil, fmt.Errorf("not enough utterances with usable vocabulary: have %d, need %d",
			len(docs), minUsableDoc)
	}
	return &corpus{vocab: vocab, docs: docs}, nil
}

// sample runs collapsed Gibbs sampling and derives the topic-word and
// document-topic distributions from the final assignment counts.
func (m *Modeler) sample(c *corpus, k int) *Result {
	rng := rand.New(rand.NewSource(m.cfg.RandomSeed))

	alpha := 50.0 / float64(k)
	v := len(c.vocab)

	ndk := make([][]int, len(c.docs))
	nkw := make([][]int, k)
	nk := make([]int, k)
	z := make([][]int, len(c.docs))

	for t := range nkw {
		nkw[t] = make([]int, v)
	}
	for d, doc := range c.docs {
		ndk[d] = make([]int, k)
		z[d] = make([]int, len(doc.words))
		for i, w := range doc.words {
			t := rng.Intn(k)
			z[d][i] = t
			ndk[d][t]++
			nkw[t][w]++
			nk[t]++
		}
	}

	weights := make([]float64, k)
	for sweep := 0; sweep < gibbsSweeps; sweep++ {
		for d, doc := range c.docs {
			for i, w := range doc.words {
				t := z[d][i]
				ndk[d][t]--
				nkw[t][w]--
				nk[t]--

				var total float64
				for j := 0; j < k; j++ {
					p := (float64(ndk[d][j]) + alpha) *
						(float64(nkw[j][w]) + betaPrior) /
						(float64(nk[j]) + float64(v)*betaPrior)
					weights[j] = p
					total += p
				}

				r := rng.Float64() * total
				t = k - 1
				for j := 0; j < k; j++ {
					r -= weights[j]
					if r < 0 {
						t = j
						break
					}
				}

				z[d][i] = t
				ndk[d][t]++
				nkw[t][w]++
				nk[t]++
			}
		}
	}

	res := &Result{
		TopicCount:     k,
		VocabularySize: v,
		Topics:         make([]Topic, k),
		Documents:      make([]DocumentTopics, 0, len(c.docs)),
	}

	topN := m.cfg.TopWordsPerTopic
	for t := 0; t < k; t++ {
		denom := float64(nk[t]) + float64(v)*betaPrior
		words := make([]TopicWord, v)
		for w := 0; w < v; w++ {
			words[w] = TopicWord{
				Word:   c.vocab[w],
				Weight: (float64(nkw[t][w]) + betaPrior) / denom,
			}
		}
		sort.SliceStable(words, func(i, j int) bool {
			return words[i].Weight > words[j].Weight
		})
		if len(words) > topN {
			words = words[:topN]
		}
		res.Topics[t] = Topic{ID: t, Words: words}
	}

	for d, doc := range c.docs {
		denom := float64(len(doc.words)) + float64(k)*alpha
		membership := make([]float64, k)
		dominant := 0
		for t := 0; t < k; t++ {
			membership[t] = (float64(ndk[d][t]) + alpha) / denom
			if membership[t] > membership[dominant] {
				dominant = t
			}
		}
		res.Documents = append(res.Documents, DocumentTopics{
			UtteranceIndex: doc.utteranceIndex,
			Dominant:       dominant,
			Membership:     membership,
		})
	}

	return res
}
