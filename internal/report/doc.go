// Package report turns match sets into the comparison result consumed by
// renderers: per-document statistics, fragment groups and the document text
// re-assembled with highlight markers around non-unique tokens.
package report
