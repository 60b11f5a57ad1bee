package shingle

import "math/bits"

// IndexSet is a set of global token indices backed by a bitset. The zero value
// is an empty set that grows on Add.
type IndexSet struct {
	words []uint64
	count int
}

// NewIndexSet returns an empty set with room for indices below size.
func NewIndexSet(size int) *IndexSet {
	if size < 0 {
		size = 0
	}
	return &IndexSet{words: make([]uint64, (size+63)/64)}
}

// Add inserts i. Negative indices are ignored.
func (s *IndexSet) Add(i int) {
	if i < 0 {
		return
	}
	w := i / 64
	if w >= len(s.words) {
		grown := make([]uint64, w+1)
		copy(grown, s.words)
		s.words = grown
	}
	mask := uint64(1) << (uint(i) % 64)
	if s.words[w]&mask == 0 {
		s.words[w] |= mask
		s.count++
	}
}

// AddRange inserts every index in [lo, hi).
func (s *IndexSet) AddRange(lo, hi int) {
	for i := lo; i < hi; i++ {
		s.Add(i)
	}
}

// Has reports whether i is in the set.
func (s *IndexSet) Has(i int) bool {
	if s == nil || i < 0 {
		return false
	}
	w := i / 64
	if w >= len(s.words) {
		return false
	}
	return s.words[w]&(uint64(1)<<(uint(i)%64)) != 0
}

// Len returns the number of indices in the set.
func (s *IndexSet) Len() int {
	if s == nil {
		return 0
	}
	return s.count
}

// Union adds every index of other to s.
func (s *IndexSet) Union(other *IndexSet) {
	if other == nil {
		return
	}
	if len(other.words) > len(s.words) {
		grown := make([]uint64, len(other.words))
		copy(grown, s.words)
		s.words = grown
	}
	count := 0
	for i := range s.words {
		if i < len(other.words) {
			s.words[i] |= other.words[i]
		}
		count += bits.OnesCount64(s.words[i])
	}
	s.count = count
}

// Indices returns the members in ascending order.
func (s *IndexSet) Indices() []int {
	if s == nil {
		return nil
	}
	out := make([]int, 0, s.count)
	for w, word := range s.words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			out = append(out, w*64+bit)
			word &^= uint64(1) << uint(bit)
		}
	}
	return out
}

// Equal reports whether both sets hold the same indices.
func (s *IndexSet) Equal(other *IndexSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	a, b := s.Indices(), other.Indices()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
