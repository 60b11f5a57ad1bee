package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"shingle/internal/document"
	"shingle/internal/stemmer"
)

// DefaultFunctionWords are the conjunctions and prepositions removed before
// matching.
var DefaultFunctionWords = []string{
	// conjunctions
	"и", "но", "а", "ж", "же", "то",
	// prepositions
	"в", "к", "на", "с", "со", "из", "о", "от",
}

// Normalizer cleans and segments text. It is safe for concurrent use.
type Normalizer struct {
	stem          stemmer.Stemmer
	functionWords map[string]struct{}
	tag           language.Tag
}

// Option customizes a Normalizer.
type Option func(*Normalizer)

// WithStemmer replaces the heuristic stemmer.
func WithStemmer(s stemmer.Stemmer) Option {
	return func(n *Normalizer) {
		if s != nil {
			n.stem = s
		}
	}
}

// WithFunctionWords adds words to the default function-word set.
func WithFunctionWords(words ...string) Option {
	return func(n *Normalizer) {
		for _, w := range words {
			n.addFunctionWord(w)
		}
	}
}

// New returns a Normalizer using the heuristic stemmer and the default
// function words unless overridden by opts.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		stem:          stemmer.Heuristic{},
		functionWords: make(map[string]struct{}, len(DefaultFunctionWords)),
		tag:           language.Russian,
	}
	for _, w := range DefaultFunctionWords {
		n.addFunctionWord(w)
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Normalizer) addFunctionWord(word string) {
	key := n.key(word)
	if key == "" {
		return
	}
	n.functionWords[key] = struct{}{}
}

// key lowercases word and removes every period.
func (n *Normalizer) key(word string) string {
	// cases.Caser is stateful and must not be shared between goroutines.
	return strings.ReplaceAll(cases.Lower(n.tag).String(strings.TrimSpace(word)), ".", "")
}

// IsFunctionWord reports whether word is dropped by the normalizer.
func (n *Normalizer) IsFunctionWord(word string) bool {
	_, ok := n.functionWords[n.key(word)]
	return ok
}

// Sentences runs the full pipeline over text.
func (n *Normalizer) Sentences(text string) []document.Sentence {
	cleaned := Clean(text)
	var out []document.Sentence
	for _, raw := range SplitSentences(cleaned) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		var tokens []document.Token
		for _, word := range strings.Fields(raw) {
			key := n.key(word)
			if key == "" {
				continue
			}
			if _, skip := n.functionWords[key]; skip {
				continue
			}
			stemmed := n.stem.Stem(word)
			tokens = append(tokens, document.Token{
				Text:       stemmed,
				Terminal:   strings.HasSuffix(stemmed, "."),
				Alphabetic: stemmer.IsTargetWord(word),
			})
		}
		if len(tokens) == 0 {
			continue
		}
		out = append(out, document.Sentence{
			Tokens:   tokens,
			Terminal: strings.HasSuffix(strings.TrimSpace(raw), "."),
		})
	}
	return out
}

// Document runs the pipeline and indexes the result.
func (n *Normalizer) Document(text string) document.Document {
	return document.Build(n.Sentences(text))
}

// Clean replaces dashes with spaces and strips every character that is not
// an ASCII word character, a Cyrillic letter, whitespace or a period.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case isDash(r):
			b.WriteByte(' ')
		case isWordRune(r), isCyrillic(r), unicode.IsSpace(r), r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SplitSentences cuts text immediately after every period. The period stays
// with the preceding sentence; whitespace following it is discarded.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}
		out = append(out, text[start:i+1])
		j := i + 1
		for j < len(text) {
			r, size := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(r) {
				break
			}
			j += size
		}
		start = j
		i = j - 1
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

func isDash(r rune) bool {
	return r == '-' || r == '–' || r == '—'
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isCyrillic(r rune) bool {
	return (r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') || r == 'ё' || r == 'Ё'
}
