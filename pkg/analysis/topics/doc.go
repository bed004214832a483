// Package topics infers latent themes from a conversation using Latent
// Dirichlet Allocation with collapsed Gibbs sampling. Each utterance is one
// document; words below the configured document-frequency cutoff are dropped
// before inference. The sampler is seeded from configuration, so the same
// conversation and configuration always produce the same topics.
//
// When the surviving vocabulary is smaller than the requested topic count,
// the model is fit with fewer topics and the result is marked Reduced.
package topics
