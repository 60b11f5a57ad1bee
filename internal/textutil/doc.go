// Package textutil provides term-frequency fingerprints and cosine similarity
// over normalized tokens.
//
// The comparison report uses it for a single document-level vocabulary
// similarity figure that complements the window-based overlap marks.
// Fingerprints are built from already-normalized tokens; NewFingerprintText
// tokenizes raw text by lowercasing and splitting on anything that is not a
// letter or digit, discarding tokens shorter than three runes.
package textutil
