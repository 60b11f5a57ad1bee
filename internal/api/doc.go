// Package api defines wire-format types and the comparison service shared by
// the CLI and the HTTP server.
//
// # Key Types
//
// CompareRequest/CompareResponse: two raw texts in, a comparison result plus
// its history id out.
//
// CleanRequest/CleanResponse: the normalized sentence view of one text.
//
// HistoryItem: transport representation of a stored comparison.
//
// Status: server runtime information.
//
// # Service
//
// ComparisonService refuses requests where both texts are blank, reuses a
// stored result when the same normalized pair was already compared under the
// same settings, and records new comparisons when history is enabled.
//
// # Design Notes
//
// DTOs use camelCase JSON tags. Timestamps use RFC3339 with milliseconds.
// ComparisonResult fields keep the names the browser front end reads
// (markedText1, percentNonUnique1 and so on).
package api
