// Package watch observes a directory for conversation logs and triggers
// analysis when a log is created or modified. Writes are debounced per file
// so partially written logs are not analyzed mid-write.
package watch
