// Package archive persists analysis runs for later inspection. A run record
// wraps the immutable analysis result with an identifier, a source name, and
// a recorded-at timestamp; the storage backends under archive/storage keep
// records queryable by source and time window.
package archive
