package sequence

import "iter"

// Pair is an unordered index pair with I < J.
type Pair struct {
	I, J int
}

// Pairs lazily enumerates every (i, j) with start <= i < j < end in
// lexicographic order. It is single-use: once drained it stays drained.
type Pairs struct {
	outer, inner, end int
}

// NewPairs creates an enumerator over the half-open range [start, end).
func NewPairs(start, end int) *Pairs {
	return &Pairs{outer: start, inner: start + 1, end: end}
}

// Next returns the next pair, or ok=false once every pair has been produced.
func (p *Pairs) Next() (i, j int, ok bool) {
	if p.inner >= p.end {
		p.outer++
		p.inner = p.outer + 1
		if p.inner >= p.end {
			p.outer = p.end
			return 0, 0, false
		}
	}
	i, j = p.outer, p.inner
	p.inner++
	return i, j, true
}

// All drains the enumerator as a range-over-func sequence.
func (p *Pairs) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for {
			i, j, ok := p.Next()
			if !ok || !yield(i, j) {
				return
			}
		}
	}
}

// Iterator drains the enumerator as an Iterator of Pair values.
func (p *Pairs) Iterator() *Iterator[Pair] {
	return FromSeq(func(yield func(Pair) bool) {
		for i, j := range p.All() {
			if !yield(Pair{I: i, J: j}) {
				return
			}
		}
	})
}

// PairCount is the number of pairs an enumerator over n indices produces.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
