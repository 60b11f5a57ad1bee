package shingle

// vocabulary interns words to dense ids shared by both streams of one
// comparison.
type vocabulary struct {
	ids map[string]int
}

func newVocabulary(capacity int) *vocabulary {
	return &vocabulary{ids: make(map[string]int, capacity)}
}

func (v *vocabulary) intern(words []string) []int {
	out := make([]int, len(words))
	for i, w := range words {
		id, ok := v.ids[w]
		if !ok {
			id = len(v.ids)
			v.ids[w] = id
		}
		out[i] = id
	}
	return out
}

func (v *vocabulary) size() int { return len(v.ids) }
