// Package normalize turns raw free-form text into the sentence and token
// model consumed by the overlap matcher.
//
// The pipeline is fixed: dashes become spaces, characters outside the word,
// Cyrillic, whitespace and period classes are removed, the text is split after
// every period, sentences are split on whitespace, function words are dropped,
// and every surviving token is stemmed. Sentences left without tokens vanish.
package normalize
