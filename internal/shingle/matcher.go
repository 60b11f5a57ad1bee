package shingle

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultWindowSize is the shingle length in tokens.
	DefaultWindowSize = 7
	// DefaultMinMatchSize is the number of distinct shared words that makes
	// two windows overlap.
	DefaultMinMatchSize = 4
)

// ErrInvalidConfig is returned by New for non-positive sizes.
var ErrInvalidConfig = errors.New("invalid matcher configuration")

// Matcher compares token streams by fuzzy shingles. It is an immutable value
// and safe for concurrent use.
type Matcher struct {
	windowSize   int
	minMatchSize int
}

// New validates the sizes and returns a Matcher.
func New(windowSize, minMatchSize int) (Matcher, error) {
	if windowSize < 1 {
		return Matcher{}, fmt.Errorf("%w: window size %d must be at least 1", ErrInvalidConfig, windowSize)
	}
	if minMatchSize < 1 {
		return Matcher{}, fmt.Errorf("%w: minimum match size %d must be at least 1", ErrInvalidConfig, minMatchSize)
	}
	return Matcher{windowSize: windowSize, minMatchSize: minMatchSize}, nil
}

// Default returns a Matcher with a window of 7 and a minimum match of 4.
func Default() Matcher {
	return Matcher{windowSize: DefaultWindowSize, minMatchSize: DefaultMinMatchSize}
}

// WindowSize returns the configured window length.
func (m Matcher) WindowSize() int { return m.windowSize }

// MinMatchSize returns the configured minimum shared vocabulary.
func (m Matcher) MinMatchSize() int { return m.minMatchSize }

// EffectiveWindow returns the window used for streams of the given lengths,
// or 0 when no window can reach the minimum match size.
func (m Matcher) EffectiveWindow(sourceLen, targetLen int) int {
	w := min(m.windowSize, sourceLen, targetLen)
	if w < m.minMatchSize || w < 1 {
		return 0
	}
	return w
}

// FindOverlap marks every source and target index that belongs to a window
// pair sharing at least MinMatchSize distinct words. The returned sets index
// source and target respectively; either argument order yields the same marks
// per stream.
func (m Matcher) FindOverlap(source, target []string) (*IndexSet, *IndexSet) {
	srcSet, tgtSet := NewIndexSet(len(source)), NewIndexSet(len(target))
	sc := m.newScanner(source, target)
	if sc == nil {
		return srcSet, tgtSet
	}
	for i := 0; i < sc.rows(); i++ {
		sc.scanRow(i, srcSet, tgtSet)
	}
	return srcSet, tgtSet
}

// FindOverlapParallel is FindOverlap with source rows split across workers.
// Each worker owns its sets; they are unioned once all rows are done. A
// cancelled ctx aborts the scan and returns ctx's error.
func (m Matcher) FindOverlapParallel(ctx context.Context, source, target []string, workers int) (*IndexSet, *IndexSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if workers <= 1 {
		src, tgt := m.FindOverlap(source, target)
		return src, tgt, nil
	}

	srcSet, tgtSet := NewIndexSet(len(source)), NewIndexSet(len(target))
	base := m.newScanner(source, target)
	if base == nil {
		return srcSet, tgtSet, nil
	}
	rows := base.rows()
	workers = min(workers, rows)
	chunk := (rows + workers - 1) / workers

	type partial struct{ src, tgt *IndexSet }
	parts := make([]partial, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, rows)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			sc := base.clone()
			local := partial{src: NewIndexSet(len(source)), tgt: NewIndexSet(len(target))}
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				sc.scanRow(i, local.src, local.tgt)
			}
			parts[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	for _, p := range parts {
		srcSet.Union(p.src)
		tgtSet.Union(p.tgt)
	}
	return srcSet, tgtSet, nil
}

// scanner holds per-goroutine scratch space for one comparison.
type scanner struct {
	src, tgt []int
	window   int
	minMatch int
	vocab    int

	// inSource[id] == row+1 while id occurs in the current source window.
	inSource []int
	// seen[id] == pass once id was counted in the current target window.
	seen []int
	pass int
}

func (m Matcher) newScanner(source, target []string) *scanner {
	w := m.EffectiveWindow(len(source), len(target))
	if w == 0 {
		return nil
	}
	vocab := newVocabulary(len(source) + len(target))
	sc := &scanner{
		src:      vocab.intern(source),
		tgt:      vocab.intern(target),
		window:   w,
		minMatch: m.minMatchSize,
	}
	sc.vocab = vocab.size()
	sc.inSource = make([]int, sc.vocab)
	sc.seen = make([]int, sc.vocab)
	return sc
}

func (sc *scanner) clone() *scanner {
	return &scanner{
		src:      sc.src,
		tgt:      sc.tgt,
		window:   sc.window,
		minMatch: sc.minMatch,
		vocab:    sc.vocab,
		inSource: make([]int, sc.vocab),
		seen:     make([]int, sc.vocab),
	}
}

func (sc *scanner) rows() int { return len(sc.src) - sc.window + 1 }

func (sc *scanner) scanRow(i int, srcSet, tgtSet *IndexSet) {
	stamp := i + 1
	for _, id := range sc.src[i : i+sc.window] {
		sc.inSource[id] = stamp
	}
	for j := 0; j+sc.window <= len(sc.tgt); j++ {
		if sc.shared(j, stamp) >= sc.minMatch {
			srcSet.AddRange(i, i+sc.window)
			tgtSet.AddRange(j, j+sc.window)
		}
	}
}

// shared counts distinct words of target window j present in the source
// window stamped with stamp. Counting stops at minMatch.
func (sc *scanner) shared(j, stamp int) int {
	sc.pass++
	count := 0
	for _, id := range sc.tgt[j : j+sc.window] {
		if sc.seen[id] == sc.pass {
			continue
		}
		sc.seen[id] = sc.pass
		if sc.inSource[id] == stamp {
			count++
			if count >= sc.minMatch {
				break
			}
		}
	}
	return count
}
