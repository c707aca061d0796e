// Package llp implements the Lattice-Linear Predicate fixed-point
// orchestrator: the reusable engine that drives every algorithm instance in
// this module.
//
// An algorithm instance supplies a Contract — an eligibility predicate, one
// or more forbidden predicates, and a sequence of advance steps — and the
// orchestrator repeatedly (a) identifies in parallel every index whose
// local state violates its invariant (CollectForbidden) and (b) advances
// those indices by one monotone step (Advance), until no index is
// forbidden (Solve).
//
// The default outer loop is:
//
//	repeat:
//	  hasForb ← collectForbidden(0, L)
//	  if hasForb: advance(L)
//	until ¬hasForb
//
// Instances with multi-phase structure (FastComponents' inner
// pointer-jumping fixed point) drive CollectForbidden directly and run
// their own advance sub-steps instead of calling Solve, to interleave a
// nested fixed point inside one outer advance wave.
package llp
