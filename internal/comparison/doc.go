// Package comparison wires the normalizer, shingle matcher, fragment grouper
// and report aggregator into a single engine.
//
// Engine.Compare is total: any two documents, including empty ones, produce a
// result. The text-level entry points add the boundary checks that the core
// does not make, namely the per-document token bound and the refusal of
// requests where both texts are blank.
package comparison
