package fragment

import "sort"

// Group is a maximal run of consecutive global indices.
type Group struct {
	Start int    `json:"start"`
	End   int    `json:"end"` // inclusive
	Color string `json:"color,omitempty"`
}

// Len returns the number of indices in the run.
func (g Group) Len() int { return g.End - g.Start + 1 }

// Indices expands the run.
func (g Group) Indices() []int {
	out := make([]int, 0, g.Len())
	for i := g.Start; i <= g.End; i++ {
		out = append(out, i)
	}
	return out
}

// Contains reports whether i falls inside the run.
func (g Group) Contains(i int) bool { return i >= g.Start && i <= g.End }

// Runs splits indices into maximal runs of consecutive values. Input order
// does not matter; duplicates are collapsed.
func Runs(indices []int) []Group {
	if len(indices) == 0 {
		return nil
	}
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)

	var groups []Group
	cur := Group{Start: sorted[0], End: sorted[0]}
	for _, idx := range sorted[1:] {
		switch {
		case idx == cur.End:
			continue
		case idx == cur.End+1:
			cur.End = idx
		default:
			groups = append(groups, cur)
			cur = Group{Start: idx, End: idx}
		}
	}
	return append(groups, cur)
}

// Colorize groups indices and colours each run from palette in discovery
// order.
func Colorize(indices []int, palette Palette) []Group {
	groups := Runs(indices)
	for i := range groups {
		groups[i].Color = palette.At(i)
	}
	return groups
}

// ColorMap returns the colour of every grouped index, sized to n tokens.
// Unmarked slots are empty. The first group claiming an index keeps it.
func ColorMap(groups []Group, n int) []string {
	out := make([]string, n)
	for _, g := range groups {
		for i := max(g.Start, 0); i <= g.End && i < n; i++ {
			if out[i] == "" {
				out[i] = g.Color
			}
		}
	}
	return out
}
