// Package stemmer reduces Cyrillic word tokens to crude stems so inflected
// forms of the same word compare equal during overlap matching.
//
// The default Heuristic stemmer is a fixed length-bucketed suffix stripper:
// it does not consult a dictionary and it never touches tokens outside the
// Cyrillic alphabet (numbers, Latin words, mixed symbols). A Snowball-backed
// stemmer is available for callers that prefer linguistic stems; it shares the
// same alphabet gate and trailing-period handling.
package stemmer
