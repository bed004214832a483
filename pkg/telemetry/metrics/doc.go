// Package metrics exposes Prometheus counters and histograms for analysis
// runs: run counts and durations, messages analyzed, and per-component
// unavailability. Intended for watch mode, where the process is long-lived
// enough to scrape.
package metrics
