// Package storage provides the archive storage backends: a SQLite backend
// for persistent archives and an in-memory backend for tests and ephemeral
// runs. Both implement archive.Storage.
package storage
