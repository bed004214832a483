package storage

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema creates the runs table and its query indexes.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	recorded_at TIMESTAMP NOT NULL,
	message_count INTEGER NOT NULL,
	turn_changes INTEGER NOT NULL,
	engagement_score REAL NOT NULL,
	result TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_recorded_at ON runs(recorded_at);
CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY
);
`

// InsertSchemaVersion records the schema version, once.
const InsertSchemaVersion = `INSERT OR IGNORE INTO schema_version (version) VALUES (?);`

// GetSchemaVersion reads the highest recorded schema version.
const GetSchemaVersion = `SELECT MAX(version) FROM schema_version;`
