// Package shingle finds overlapping word windows between two token streams.
//
// A Matcher slides a fixed-size window over both streams and compares every
// window pair by the number of distinct words they share, ignoring order.
// When the shared vocabulary reaches the minimum match size, every index of
// both windows is marked non-unique, not just the shared words. The cost is
// quadratic in document length times the window size, so callers bound the
// input before matching.
//
// Words are interned to dense integers before matching and index sets are
// bitsets sized to the document they describe.
package shingle
