// Package history persists finished comparisons in SQLite.
//
// Each record carries the BLAKE3 digests of both normalized documents, a
// digest of the settings that shaped the output, summary statistics, and the
// full result as JSON. Records are keyed by UUID. FindReusable lets callers
// skip matching when the same pair was already compared under the same
// settings, and Prune enforces the configured retention window.
//
// The schema is versioned; a database written by a different version is
// rejected with ErrSchemaMismatch rather than migrated.
package history
