// Package flow measures the shape of a conversation: how often the speaker
// changes, how message lengths are distributed overall and per speaker, how
// quickly each message follows the previous one, and a single engagement
// score in [0, 1] that blends turn-taking with length consistency using
// configurable weights.
package flow
