// Package logging builds the process-wide structured logger from
// configuration. Output goes to stderr in text or JSON format; the analysis
// output itself stays on stdout.
package logging
