package fragment_test

import (
	"reflect"
	"testing"

	"shingle/internal/fragment"
)

func spans(groups []fragment.Group) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		out[i] = g.Indices()
	}
	return out
}

func TestRuns(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    [][]int
	}{
		{"two runs", []int{2, 3, 4, 7, 8}, [][]int{{2, 3, 4}, {7, 8}}},
		{"starts at zero", []int{0, 1, 2}, [][]int{{0, 1, 2}}},
		{"unsorted with duplicates", []int{8, 2, 4, 3, 7, 3}, [][]int{{2, 3, 4}, {7, 8}}},
		{"singletons", []int{1, 3, 5}, [][]int{{1}, {3}, {5}}},
		{"empty", nil, [][]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spans(fragment.Runs(tt.indices))
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Runs(%v) = %v, want %v", tt.indices, got, tt.want)
			}
		})
	}
}

func TestRunsPartitionInput(t *testing.T) {
	input := []int{0, 1, 5, 6, 7, 9, 12, 13}
	groups := fragment.Runs(input)
	seen := map[int]int{}
	for _, g := range groups {
		for _, i := range g.Indices() {
			seen[i]++
		}
	}
	if len(seen) != len(input) {
		t.Fatalf("groups cover %d indices, want %d", len(seen), len(input))
	}
	for i, n := range seen {
		if n != 1 {
			t.Fatalf("index %d claimed %d times", i, n)
		}
	}
}

func TestColorizeCyclesPalette(t *testing.T) {
	indices := []int{}
	for i := 0; i < 9; i++ {
		indices = append(indices, i*2)
	}
	groups := fragment.Colorize(indices, fragment.DefaultPalette())
	if len(groups) != 9 {
		t.Fatalf("expected 9 groups, got %d", len(groups))
	}
	if groups[0].Color != "#ffaa33" || groups[6].Color != "#ff6600" {
		t.Fatalf("unexpected colours %q %q", groups[0].Color, groups[6].Color)
	}
	if groups[7].Color != groups[0].Color || groups[8].Color != groups[1].Color {
		t.Fatal("palette should wrap after seven groups")
	}
}

func TestColorMap(t *testing.T) {
	groups := []fragment.Group{
		{Start: 1, End: 2, Color: "#000001"},
		{Start: 2, End: 3, Color: "#000002"},
		{Start: 5, End: 9, Color: "#000003"},
	}
	got := fragment.ColorMap(groups, 6)
	want := []string{"", "#000001", "#000001", "#000002", "", "#000003"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ColorMap = %v, want %v", got, want)
	}
}

func TestNewPalette(t *testing.T) {
	p, err := fragment.NewPalette([]string{" #ABCDEF ", "#123456"})
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	if p.Len() != 2 || p.At(0) != "#abcdef" || p.At(3) != "#123456" {
		t.Fatalf("unexpected palette %v", p.Colors())
	}
	if _, err := fragment.NewPalette(nil); err == nil {
		t.Fatal("expected error for empty palette")
	}
	if _, err := fragment.NewPalette([]string{"orange"}); err == nil {
		t.Fatal("expected error for named colour")
	}
	var zero fragment.Palette
	if zero.At(0) != fragment.DefaultColors[0] {
		t.Fatal("zero palette should fall back to defaults")
	}
}
