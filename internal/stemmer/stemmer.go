package stemmer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball"
)

// Kind names a stemming strategy selectable from configuration.
type Kind string

const (
	KindHeuristic Kind = "heuristic"
	KindSnowball  Kind = "snowball"
)

// targetWordPattern matches tokens made only of Cyrillic letters with at most
// one trailing period.
var targetWordPattern = regexp.MustCompile(`^[а-яА-ЯёЁ]+\.?$`)

// Stemmer maps one token to its stem.
type Stemmer interface {
	Stem(token string) string
}

// Func adapts a plain function to the Stemmer interface.
type Func func(string) string

// Stem calls f(token).
func (f Func) Stem(token string) string { return f(token) }

// New returns the stemmer registered for kind. An empty kind selects the
// heuristic stemmer.
func New(kind Kind) (Stemmer, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(string(kind)))) {
	case "", KindHeuristic:
		return Heuristic{}, nil
	case KindSnowball:
		return Snowball{}, nil
	default:
		return nil, fmt.Errorf("unknown stemmer %q", kind)
	}
}

// IsTargetWord reports whether token consists only of Cyrillic letters,
// optionally followed by a single period.
func IsTargetWord(token string) bool {
	return targetWordPattern.MatchString(token)
}

// Heuristic strips a fixed number of trailing letters chosen by word length.
type Heuristic struct{}

// Stem applies the length buckets: up to 4 letters unchanged, 5 letters lose
// one, 6 letters lose two, 7 or more lose three. A trailing period survives.
func (Heuristic) Stem(token string) string {
	return stemTarget(token, heuristicSuffix)
}

func heuristicSuffix(word string) string {
	n := utf8.RuneCountInString(word)
	var drop int
	switch {
	case n <= 4:
		return word
	case n == 5:
		drop = 1
	case n == 6:
		drop = 2
	default:
		drop = 3
	}
	runes := []rune(word)
	return string(runes[:n-drop])
}

// Snowball delegates suffix removal to the Russian Snowball algorithm.
// Snowball output is lowercase.
type Snowball struct{}

// Stem returns the Snowball stem of a Cyrillic token, keeping a trailing period.
func (Snowball) Stem(token string) string {
	return stemTarget(token, func(word string) string {
		stemmed, err := snowball.Stem(word, "russian", true)
		if err != nil || stemmed == "" {
			return word
		}
		return stemmed
	})
}

func stemTarget(token string, reduce func(string) string) string {
	if !IsTargetWord(token) {
		return token
	}
	word, hasDot := strings.CutSuffix(token, ".")
	stem := reduce(word)
	if hasDot {
		return stem + "."
	}
	return stem
}
