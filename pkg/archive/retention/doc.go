// Package retention prunes old archived runs. Pruning is age-based
// (runs older than a configured number of days) and optionally count-based
// (keep at most N runs, dropping the oldest). A cron scheduler can run the
// pruner automatically.
package retention
