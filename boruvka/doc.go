// Package boruvka implements parallel Borůvka minimum spanning tree as a
// conformance example: it is not specified in the same forbidden/advance
// detail as the five required instances, so this implementation favors a
// contraction step built as a pure phase that reads an immutable snapshot
// and emits new state, rather than mixing locks with shared collections
// (see DESIGN.md).
//
// Each round: every vertex finds its own cheapest incident edge leaving
// its component, against a frozen snapshot of the union-find forest (a parallel,
// write-only-to-its-own-slot phase); the per-vertex results are then
// reduced to one winner per component and unioned in, sequentially,
// since that step is cheap and union-find itself is not safely
// parallelizable without locking. Its round structure does not fit the
// generic forbidden/advance shape, so Solve drives its own loop directly
// rather than implementing llp.Contract.
package boruvka
