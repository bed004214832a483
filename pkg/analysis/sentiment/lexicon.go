package sentiment

// valence maps lowercased words to sentiment valence in roughly [-4, 4].
// Weights follow the usual lexicon convention: strong emotion near the ends,
// mild tilt near the middle.
var valence = map[string]float64{
	// Positive
	"love":        3.2,
	"loved":       2.9,
	"loves":       3.0,
	"wonderful":   2.7,
	"excellent":   2.7,
	"amazing":     2.8,
	"fantastic":   2.6,
	"brilliant":   2.8,
	"great":       2.4,
	"delightful":  2.5,
	"beautiful":   2.4,
	"perfect":     2.7,
	"best":        2.6,
	"good":        1.9,
	"nice":        1.8,
	"happy":       2.1,
	"glad":        1.9,
	"enjoy":       1.9,
	"enjoyed":     1.9,
	"like":        1.5,
	"likes":       1.5,
	"liked":       1.5,
	"agree":       1.5,
	"agreed":      1.4,
	"appreciate":  1.8,
	"thank":       1.7,
	"thanks":      1.7,
	"helpful":     1.7,
	"interesting": 1.3,
	"insightful":  1.8,
	"fascinating": 2.0,
	"compelling":  1.6,
	"valid":       1.2,
	"fair":        1.1,
	"right":       1.0,
	"true":        1.0,
	"useful":      1.4,
	"clever":      1.6,
	"elegant":     1.7,
	"impressive":  2.0,
	"fun":         1.9,
	"better":      1.3,
	"win":         1.7,
	"success":     2.0,
	"successful":  2.0,
	"correct":     1.3,
	"yes":         0.9,

	// Negative
	"hate":         -2.7,
	"hated":        -2.6,
	"hates":        -2.6,
	"terrible":     -2.6,
	"awful":        -2.5,
	"horrible":     -2.6,
	"worst":        -2.8,
	"dreadful":     -2.4,
	"disgusting":   -2.6,
	"bad":          -1.9,
	"poor":         -1.5,
	"wrong":        -1.6,
	"fail":         -1.9,
	"failed":       -1.9,
	"failure":      -2.0,
	"broken":       -1.6,
	"useless":      -1.9,
	"boring":       -1.5,
	"sad":          -1.8,
	"angry":        -1.9,
	"annoying":     -1.7,
	"frustrating":  -1.8,
	"disagree":     -1.5,
	"disagreed":    -1.4,
	"doubt":        -1.1,
	"doubtful":     -1.2,
	"false":        -1.1,
	"flawed":       -1.4,
	"mistake":      -1.4,
	"mistaken":     -1.3,
	"problem":      -1.2,
	"problematic":  -1.3,
	"worse":        -1.6,
	"lose":         -1.4,
	"lost":         -1.2,
	"no":           -0.8,
	"never":        -0.9,
	"unfortunate":  -1.6,
	"disappointed": -2.0,
	"disappointing": -2.0,
	"nonsense":     -1.7,
	"absurd":       -1.4,
	"confusing":    -1.2,
	"unclear":      -1.0,
}

// negators flip the sign of a following sentiment word.
var negators = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"neither": {},
	"nor":     {},
	"nobody":  {},
	"nothing": {},
	"hardly":  {},
	"barely":  {},
	"without": {},
	"isn't":   {},
	"aren't":  {},
	"wasn't":  {},
	"weren't": {},
	"don't":   {},
	"doesn't": {},
	"didn't":  {},
	"can't":   {},
	"cannot":  {},
	"couldn't": {},
	"won't":   {},
	"wouldn't": {},
	"shouldn't": {},
}

// intensifiers scale the magnitude of a following sentiment word.
// Positive boosts amplify, negative boosts dampen.
var intensifiers = map[string]float64{
	"very":       0.30,
	"really":     0.30,
	"extremely":  0.40,
	"incredibly": 0.40,
	"absolutely": 0.35,
	"completely": 0.30,
	"totally":    0.30,
	"deeply":     0.30,
	"so":         0.20,
	"quite":      0.15,
	"rather":     0.10,
	"somewhat":   -0.20,
	"slightly":   -0.30,
	"barely":     -0.40,
	"marginally": -0.30,
}
