// Package iset implements the index-set L used by the LLP orchestrator: a
// compact bitset over [0, n) supporting clear, set, test, iteration over
// set bits, cardinality, and emptiness.
//
// set is safe to call from many workers concurrently: it performs a
// word-level atomic OR, so concurrent set calls on distinct bits (and even
// on the same bit) always produce the correct union.
package iset
