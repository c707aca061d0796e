package llp

import (
	"fmt"

	"github.com/katalvlaran/llp/executor"
	"github.com/katalvlaran/llp/iset"
	"github.com/katalvlaran/llp/llperr"
)

// CollectForbidden clears out and, in parallel, sets out[v] for every v in
// [0, c.N()) with c.Eligible(v) && c.Forbidden(kind, v). It returns whether
// out ended up non-empty.
//
// All forbidden-predicate evaluations within one call read the same
// snapshot of the instance's state: CollectForbidden must never run
// concurrently with Advance on the same Contract.
func CollectForbidden(pool *executor.Pool, c Contract, kind int, out *iset.Set) (bool, error) {
	out.Clear()

	err := pool.InvokeRangeAndJoin(c.N(), func(v int) error {
		if c.Eligible(v) && c.Forbidden(kind, v) {
			out.Set(v)
		}
		return nil
	})
	if err != nil {
		return false, llperr.NewWorkerFailure("collectForbidden", err)
	}

	return !out.IsEmpty(), nil
}

// Advance runs every declared advance sub-step, in order, over either l or
// the sub-step's SelectionForStep override, joining at a barrier before the
// next sub-step begins. Writes made by sub-step k are visible to reads in
// sub-step k+1.
func Advance(pool *executor.Pool, c Contract, l *iset.Set) error {
	for step := 0; step < c.NumAdvanceSteps(); step++ {
		indices := indicesForStep(c, step, l)

		err := pool.InvokeAllAndJoin(indices, func(v int) error {
			return c.AdvanceStep(step, v)
		})
		if err != nil {
			return llperr.NewWorkerFailure(fmt.Sprintf("advance:step%d", step), err)
		}
	}

	return nil
}

// Solve drives the default outer fixed-point loop to completion:
//
//	repeat:
//	  hasForb ← collectForbidden(0, L)
//	  if hasForb: advance(L)
//	until ¬hasForb
//
// Instances with a custom multi-phase advance (FastComponents) do not call
// Solve; they drive CollectForbidden directly from their own Solve method
// and run their own advance sub-steps, so they can interleave a nested
// fixed point.
func Solve(pool *executor.Pool, c Contract) error {
	l := iset.New(c.N())

	for {
		hasForb, err := CollectForbidden(pool, c, 0, l)
		if err != nil {
			return err
		}
		if !hasForb {
			return nil
		}
		if err := Advance(pool, c, l); err != nil {
			return err
		}
	}
}

func indicesForStep(c Contract, step int, l *iset.Set) []int {
	if sel := c.SelectionForStep(step); sel != nil {
		out := make([]int, 0, l.Len())
		for v := 0; v < c.N(); v++ {
			if sel(v) {
				out = append(out, v)
			}
		}
		return out
	}

	return l.Slice()
}
