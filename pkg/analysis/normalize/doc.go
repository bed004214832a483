// Package normalize provides token-level text preprocessing shared by the
// lexical and topic analyzers.
//
// Normalization lowercases the text, splits it on word boundaries, removes a
// fixed English stop-word set and pure punctuation tokens, and reduces
// inflected forms with a light suffix-stripping stemmer. Empty text yields an
// empty token sequence; non-ASCII text passes through the same tokenizer
// unchanged.
//
// Sentiment analysis deliberately does not consume normalized tokens, since
// negation and intensifiers depend on word order and punctuation.
package normalize
