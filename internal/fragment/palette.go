package fragment

import (
	"fmt"
	"regexp"
	"strings"
)

// Palette is an ordered list of highlight colours indexed modulo its length.
type Palette struct {
	colors []string
}

// DefaultColors are shades of orange used for highlight runs.
var DefaultColors = []string{
	"#ffaa33",
	"#ff8800",
	"#ffcc66",
	"#ff7722",
	"#ffbb44",
	"#ff9933",
	"#ff6600",
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultPalette returns the seven orange shades.
func DefaultPalette() Palette {
	p, _ := NewPalette(DefaultColors)
	return p
}

// NewPalette validates and copies colors. Every entry must be a #rrggbb hex
// colour.
func NewPalette(colors []string) (Palette, error) {
	if len(colors) == 0 {
		return Palette{}, fmt.Errorf("palette: at least one colour required")
	}
	cp := make([]string, len(colors))
	for i, c := range colors {
		c = strings.ToLower(strings.TrimSpace(c))
		if !hexColorPattern.MatchString(c) {
			return Palette{}, fmt.Errorf("palette: invalid colour %q", colors[i])
		}
		cp[i] = c
	}
	return Palette{colors: cp}, nil
}

// Len returns the number of colours.
func (p Palette) Len() int { return len(p.colors) }

// At returns the colour for group i. The zero palette falls back to the
// default colours.
func (p Palette) At(i int) string {
	colors := p.colors
	if len(colors) == 0 {
		colors = DefaultColors
	}
	if i < 0 {
		i = -i
	}
	return colors[i%len(colors)]
}

// Colors returns a copy of the palette entries.
func (p Palette) Colors() []string {
	out := make([]string, len(p.colors))
	copy(out, p.colors)
	return out
}
