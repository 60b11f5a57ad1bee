package shingle

import (
	"reflect"
	"testing"
)

func TestIndexSetAddHasLen(t *testing.T) {
	s := NewIndexSet(10)
	s.Add(3)
	s.Add(3)
	s.Add(64)
	s.Add(-1)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Has(3) || !s.Has(64) || s.Has(4) || s.Has(1000) || s.Has(-1) {
		t.Fatalf("unexpected membership: %v", s.Indices())
	}
}

func TestIndexSetRangeAndIndices(t *testing.T) {
	var s IndexSet
	s.AddRange(62, 67)
	s.Add(0)
	want := []int{0, 62, 63, 64, 65, 66}
	if got := s.Indices(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Indices() = %v, want %v", got, want)
	}
}

func TestIndexSetUnion(t *testing.T) {
	a := NewIndexSet(4)
	a.AddRange(0, 3)
	b := NewIndexSet(200)
	b.AddRange(2, 5)
	b.Add(150)
	a.Union(b)
	want := []int{0, 1, 2, 3, 4, 150}
	if got := a.Indices(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}
	if a.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", a.Len(), len(want))
	}
	a.Union(nil)
	if a.Len() != len(want) {
		t.Fatal("union with nil changed the set")
	}
}

func TestIndexSetEqual(t *testing.T) {
	a, b := NewIndexSet(8), NewIndexSet(128)
	a.AddRange(1, 4)
	b.AddRange(1, 4)
	if !a.Equal(b) {
		t.Fatal("expected equal sets")
	}
	b.Add(100)
	if a.Equal(b) {
		t.Fatal("expected different sets")
	}
	var nilSet *IndexSet
	if nilSet.Len() != 0 || nilSet.Has(0) || nilSet.Indices() != nil {
		t.Fatal("nil set should behave as empty")
	}
}
