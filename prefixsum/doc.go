// Package prefixsum implements inclusive prefix-sum as an LLP instance: a
// size-(2N-1) binary-tree state vector G, filled top-down from a root
// fixed at 0, using a summation tree S borrowed from reduce as the
// left-subtree-sum side channel.
//
// G is indexed 1-indexed-heap style via the helper V = v+1: V even means v
// is a left child (it inherits its parent's value unchanged — the prefix
// boundary carried down); V odd and V < N means v is a right child above
// the leaf level (it adds in its left sibling's full subtree sum S[V-2]);
// V odd and V >= N means v is a leaf (it adds in exactly one input
// element). At the fixed point, leaf v = N-1+i holds the *exclusive*
// prefix sum up to position i — the output step adds A[i] to convert it
// to the inclusive prefix sum P[i].
package prefixsum
