// Package analysis orchestrates the conversation analysis components:
// normalization, sentiment scoring, lexical statistics, topic modeling, and
// conversational flow. Components degrade independently; when one cannot
// produce output for a given conversation the result marks that component
// unavailable with a reason, and every other section is still returned.
//
// An empty but well-formed conversation is not an error: it yields a result
// in which every component is unavailable.
package analysis
