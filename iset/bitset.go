package iset

import (
	"fmt"
	"math/bits"
	"sync/atomic"
)

const wordBits = 64

// Set is a concurrent bitset over [0, n). The zero value is not usable;
// construct one with New.
type Set struct {
	n     int
	words []atomic.Uint64
}

// New allocates a Set over [0, n). Panics if n < 0, mirroring the teacher
// corpus's convention of rejecting malformed construction arguments eagerly
// (matrix.NewDense/dijkstra.WithMaxDistance reject via error or panic at
// construction rather than deferring the check).
func New(n int) *Set {
	if n < 0 {
		panic(fmt.Sprintf("iset: negative size %d", n))
	}

	return &Set{
		n:     n,
		words: make([]atomic.Uint64, (n+wordBits-1)/wordBits+1),
	}
}

// Len returns the domain size n the Set was constructed over.
func (s *Set) Len() int {
	return s.n
}

// Clear resets every bit to zero. Not safe to call concurrently with Set,
// Test, or the iterator — Clear must only run outside an active phase.
func (s *Set) Clear() {
	for i := range s.words {
		s.words[i].Store(0)
	}
}

// Set marks index i as a member of the set. Safe for concurrent use by many
// callers on distinct (or the same) bits: implemented as a word-level
// atomic OR via a compare-and-swap retry loop, guaranteeing the correct
// union even under contention.
func (s *Set) Set(i int) {
	s.checkBounds(i)
	word, mask := i/wordBits, uint64(1)<<(uint(i)%wordBits)
	for {
		old := s.words[word].Load()
		if old&mask != 0 {
			return // already set, nothing to do
		}
		if s.words[word].CompareAndSwap(old, old|mask) {
			return
		}
	}
}

// Test reports whether index i is a member of the set.
func (s *Set) Test(i int) bool {
	s.checkBounds(i)
	word, mask := i/wordBits, uint64(1)<<(uint(i)%wordBits)
	return s.words[word].Load()&mask != 0
}

// Cardinality returns the number of set bits.
func (s *Set) Cardinality() int {
	count := 0
	for i := range s.words {
		count += bits.OnesCount64(s.words[i].Load())
	}
	return count
}

// IsEmpty reports whether no bit is set. Equivalent to Cardinality() == 0
// but stops at the first non-zero word.
func (s *Set) IsEmpty() bool {
	for i := range s.words {
		if s.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Each calls fn once for every set bit, in ascending order. fn must not
// mutate the Set.
func (s *Set) Each(fn func(i int)) {
	for w := range s.words {
		word := s.words[w].Load()
		for word != 0 {
			b := bits.TrailingZeros64(word)
			i := w*wordBits + b
			if i >= s.n {
				return
			}
			fn(i)
			word &= word - 1 // clear lowest set bit
		}
	}
}

// Slice returns the set bits as a newly allocated, ascending-order slice.
// Convenience wrapper over Each for callers that need a concrete []int
// (e.g. to hand to executor.Pool.InvokeAllAndJoin).
func (s *Set) Slice() []int {
	out := make([]int, 0, s.Cardinality())
	s.Each(func(i int) { out = append(out, i) })
	return out
}

func (s *Set) checkBounds(i int) {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("iset: index %d out of range [0,%d)", i, s.n))
	}
}
