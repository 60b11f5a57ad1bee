// Package document holds the immutable token model shared by the matcher,
// the fragment grouper and the report renderer.
//
// A Document is built once from normalized sentences. Building assigns every
// token a dense global index (sentence order, then word order) and records an
// array-backed position table so any global index can be mapped back to its
// sentence and word slot without a map lookup.
package document
