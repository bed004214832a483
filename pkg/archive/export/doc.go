// Package export serializes archived runs for external consumption. The JSON
// exporter writes complete run records; the CSV exporter writes one summary
// row per run.
package export
