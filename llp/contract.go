package llp

// Predicate is a local condition on index v, evaluated against whatever
// snapshot of state the caller is currently reading. selectionForStep
// returns a Predicate (or nil) to override the index set an advance
// sub-step runs over.
type Predicate func(v int) bool

// Contract is what an algorithm instance supplies to the orchestrator.
// Every method must be safe to call concurrently from many goroutines for
// distinct v during the corresponding phase; each phase's tasks own only
// the coordinates they write.
type Contract interface {
	// N returns the index count; every method below is called only with
	// v in [0, N()).
	N() int

	// Eligible reports whether v may be forbidden this iteration. Indices
	// that have exhausted a progress budget (Bellman-Ford, Johnson) become
	// ineligible rather than forbidden-forever.
	Eligible(v int) bool

	// NumForbiddens is the number of forbidden predicate variants (at
	// least 1). Instances with a nested fixed point (FastComponents) use a
	// second variant for the inner pointer-jumping loop.
	NumForbiddens() int

	// Forbidden evaluates forbidden predicate variant `kind` at index v
	// against the current state snapshot. May stage a proposal in a
	// per-algorithm scratch buffer for the matching AdvanceStep to commit.
	Forbidden(kind, v int) bool

	// NumAdvanceSteps is the number of ordered sub-steps per advance wave
	// (at least 1).
	NumAdvanceSteps() int

	// AdvanceStep performs sub-step stepIdx on index v, raising v strictly
	// in the lattice order. Sub-steps execute in declared order, one
	// phase-barrier apart.
	AdvanceStep(stepIdx, v int) error

	// SelectionForStep returns the index-set override predicate for
	// sub-step stepIdx, or nil to run the sub-step over the wave's L.
	SelectionForStep(stepIdx int) Predicate
}
