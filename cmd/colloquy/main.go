// Colloquy analyzes two-party AI conversation logs.
//
// It reads a JSON conversation transcript and reports sentiment, word
// frequency, inferred topics, and conversational flow, degrading gracefully
// when a component cannot run on the given conversation.
//
// Usage:
//
//	# Analyze a single conversation log
//	colloquy analyze conversation.json
//
//	# Emit machine-readable JSON instead of the summary
//	colloquy analyze conversation.json --format json
//
//	# Analyze and archive the run
//	colloquy analyze conversation.json --store
//
//	# List and export archived runs
//	colloquy runs list
//	colloquy runs export --format csv --output runs.csv
//
//	# Watch a directory and analyze logs as they appear
//	colloquy watch --path ./transcripts
//
//	# Validate a configuration file
//	colloquy validate --config colloquy.yaml
package main

func main() {
	Execute()
}
