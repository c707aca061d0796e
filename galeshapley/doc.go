// Package galeshapley implements parallel Gale–Shapley stable matching as
// a conformance example: proposers are "forbidden" while unmatched and
// still have someone left to propose to, and "advance" is a single
// parallel round of proposals followed by a sequential, race-free
// acceptance pass. Its round structure does not fit the generic
// forbidden/advance shape, so Solve drives its own loop directly rather
// than implementing llp.Contract.
//
// Every proposer's preference list is a total order over the full
// responder set, so matching[] is an increasing lattice exactly like
// FastComp's parent[]: once a responder accepts a proposer it never later
// accepts anyone it ranks worse.
package galeshapley
