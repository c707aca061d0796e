// Package fastcomp implements parallel connected components by
// pointer-jumping as an LLP instance with a nested fixed point: an outer
// wave of vertices whose parent pointer lags behind a neighbor's,
// resolved by a three-sub-step advance whose last sub-step — pointer-
// jumping to a rooted star — is itself a fixed-point loop run to
// convergence before the outer wave recomputes.
//
// Because that inner loop cannot be expressed as a single ordered
// AdvanceStep call, Instance does not use llp.Solve: its own Solve method
// drives llp.CollectForbidden directly for both the outer predicate
// (kind 0) and the inner pointer-jump predicate (kind 1) — the
// orchestrator's multi-variant Forbidden and its CollectForbidden
// primitive exist to make exactly this kind of custom driver possible.
package fastcomp
