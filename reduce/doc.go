// Package reduce implements subtree-sum reduction as an LLP instance: a
// tree-shaped state vector G over an implicit binary tree, where every
// node ensures its value is at least the sum of its children, converging
// to the correct subtree sum everywhere.
//
// The tree is stored as a flat []int64 of length N (the input's
// power-of-two padded length): indices [0, N/2-1) are internal
// "non-leaf-parent" nodes whose children are other tree nodes (2v+1, 2v+2);
// indices [N/2-1, N-1) are "leaf-parent" nodes whose two children are raw
// input array positions. This matches a standard array-of-pairs-then-
// heap-up reduction tree: each node's subtree covers a contiguous,
// power-of-two-sized range of the padded input.
//
// Reduce's result is exported as a utility by prefixsum, which reads G as
// its summation tree S — the tree-shaped output (rather than just the
// root) is a deliberate interface, not a leak.
package reduce
