// Package conversation defines the input data model for the analysis engine:
// ordered, timestamped utterances attributed to one of two speakers.
//
// Conversation logs are produced externally (by a live AI-to-AI exchange or a
// stored export) and loaded here into an immutable Conversation value. The
// loader accepts the standard export envelope:
//
//	{
//	  "metadata": { ... },
//	  "conversation": [
//	    {"speaker": "ai1", "message": "Hello", "timestamp": "2026-01-02T15:04:05"}
//	  ]
//	}
//
// as well as a bare array of records. Malformed input (missing speaker or
// message fields, unparseable timestamps, more than two distinct speakers)
// is reported as an *InputError and aborts loading; a log with zero records
// is a valid, empty Conversation.
package conversation
