package report

import (
	"math"
	"strings"

	"shingle/internal/document"
	"shingle/internal/fragment"
	"shingle/internal/shingle"
)

// Side summarizes one document of a comparison.
type Side struct {
	MarkedText       string           `json:"markedText"`
	TotalWords       int              `json:"totalWords"`
	NonUniqueWords   int              `json:"nonUniqueWords"`
	PercentNonUnique int              `json:"percentNonUnique"`
	Groups           []fragment.Group `json:"groups"`
}

// Result is the comparison record handed to renderers.
type Result struct {
	MarkedText1          string           `json:"markedText1"`
	MarkedText2          string           `json:"markedText2"`
	PercentNonUnique1    int              `json:"percentNonUnique1"`
	PercentNonUnique2    int              `json:"percentNonUnique2"`
	TotalWords1          int              `json:"totalWords1"`
	TotalWords2          int              `json:"totalWords2"`
	NonUniqueWords1      int              `json:"nonUniqueWords1"`
	NonUniqueWords2      int              `json:"nonUniqueWords2"`
	Groups1              []fragment.Group `json:"groups1"`
	Groups2              []fragment.Group `json:"groups2"`
	VocabularySimilarity float64          `json:"vocabularySimilarity"`
}

// Combine assembles a Result from both sides.
func Combine(first, second Side, similarity float64) Result {
	return Result{
		MarkedText1:          first.MarkedText,
		MarkedText2:          second.MarkedText,
		PercentNonUnique1:    first.PercentNonUnique,
		PercentNonUnique2:    second.PercentNonUnique,
		TotalWords1:          first.TotalWords,
		TotalWords2:          second.TotalWords,
		NonUniqueWords1:      first.NonUniqueWords,
		NonUniqueWords2:      second.NonUniqueWords,
		Groups1:              nonNil(first.Groups),
		Groups2:              nonNil(second.Groups),
		VocabularySimilarity: similarity,
	}
}

// First returns the statistics of the first document.
func (r Result) First() Side {
	return Side{
		MarkedText:       r.MarkedText1,
		TotalWords:       r.TotalWords1,
		NonUniqueWords:   r.NonUniqueWords1,
		PercentNonUnique: r.PercentNonUnique1,
		Groups:           r.Groups1,
	}
}

// Second returns the statistics of the second document.
func (r Result) Second() Side {
	return Side{
		MarkedText:       r.MarkedText2,
		TotalWords:       r.TotalWords2,
		NonUniqueWords:   r.NonUniqueWords2,
		PercentNonUnique: r.PercentNonUnique2,
		Groups:           r.Groups2,
	}
}

// Aggregate groups the marked indices of doc, colours the groups and renders
// the marked text.
func Aggregate(doc document.Document, marked *shingle.IndexSet, palette fragment.Palette, h Highlighter) Side {
	groups := fragment.Colorize(marked.Indices(), palette)
	return Side{
		MarkedText:       Render(doc, fragment.ColorMap(groups, doc.Len()), h),
		TotalWords:       doc.Len(),
		NonUniqueWords:   marked.Len(),
		PercentNonUnique: Percent(marked.Len(), doc.Len()),
		Groups:           nonNil(groups),
	}
}

// Percent returns round(100*part/total), or 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// Render joins each sentence's tokens with single spaces, wrapping tokens that
// have a colour, and joins sentences with newlines. colors is indexed by
// global token index; empty entries are left unmarked.
func Render(doc document.Document, colors []string, h Highlighter) string {
	if h == nil {
		h = HTML{}
	}
	lines := make([]string, doc.SentenceCount())
	global := 0
	for si := range lines {
		s := doc.Sentence(si)
		words := make([]string, len(s.Tokens))
		for wi, tok := range s.Tokens {
			words[wi] = tok.Text
			if global < len(colors) && colors[global] != "" {
				words[wi] = h.Highlight(tok.Text, colors[global])
			}
			global++
		}
		lines[si] = strings.Join(words, " ")
	}
	return strings.Join(lines, "\n")
}

func nonNil(groups []fragment.Group) []fragment.Group {
	if groups == nil {
		return []fragment.Group{}
	}
	return groups
}
