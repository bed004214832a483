// Package cli holds presentation and process helpers shared by the colloquy
// commands: the summary and JSON renderers for analysis results, and signal
// handling for long-running modes.
package cli
