// Package fragment groups marked token indices into contiguous highlight runs
// and assigns each run a palette colour.
package fragment
