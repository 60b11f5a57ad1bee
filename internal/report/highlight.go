package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"shingle/internal/fragment"
)

// Highlighter wraps one flagged word with a marker carrying its group colour.
type Highlighter interface {
	Highlight(word, color string) string
}

// HTML wraps words in a non-unique span with an inline background colour.
type HTML struct{}

// Highlight implements Highlighter.
func (HTML) Highlight(word, color string) string {
	return fmt.Sprintf(`<span class="non-unique" style="background-color: %s">%s</span>`,
		html.EscapeString(color), html.EscapeString(word))
}

// Brackets wraps words in square brackets and ignores colour.
type Brackets struct{}

// Highlight implements Highlighter.
func (Brackets) Highlight(word, _ string) string {
	return "[" + word + "]"
}

// ansiCycle pairs palette slots with terminal background colours.
var ansiCycle = []text.Colors{
	{text.BgYellow, text.FgBlack},
	{text.BgHiYellow, text.FgBlack},
	{text.BgRed, text.FgWhite},
	{text.BgHiRed, text.FgBlack},
	{text.BgMagenta, text.FgWhite},
	{text.BgHiMagenta, text.FgBlack},
	{text.BgHiRed, text.FgWhite},
}

// ANSI colours words for a terminal. Palette colours map to ANSI background
// colours by their position in the palette.
type ANSI struct {
	slots map[string]text.Colors
}

// NewANSI builds an ANSI highlighter for palette.
func NewANSI(palette fragment.Palette) ANSI {
	colors := palette.Colors()
	if len(colors) == 0 {
		colors = fragment.DefaultColors
	}
	slots := make(map[string]text.Colors, len(colors))
	for i, c := range colors {
		if _, ok := slots[c]; !ok {
			slots[c] = ansiCycle[i%len(ansiCycle)]
		}
	}
	return ANSI{slots: slots}
}

// Highlight implements Highlighter.
func (a ANSI) Highlight(word, color string) string {
	colors, ok := a.slots[color]
	if !ok {
		colors = ansiCycle[0]
	}
	return colors.Sprint(word)
}

// Kind names a highlighter selectable from configuration.
type Kind string

const (
	KindHTML     Kind = "html"
	KindANSI     Kind = "ansi"
	KindBrackets Kind = "brackets"
)

// NewHighlighter returns the highlighter registered for kind. An empty kind
// selects HTML.
func NewHighlighter(kind Kind, palette fragment.Palette) (Highlighter, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(string(kind)))) {
	case "", KindHTML:
		return HTML{}, nil
	case KindANSI:
		return NewANSI(palette), nil
	case KindBrackets:
		return Brackets{}, nil
	default:
		return nil, fmt.Errorf("unknown highlighter %q", kind)
	}
}
