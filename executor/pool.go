package executor

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of work keyed by an index in [0, n).
type Task func(idx int) error

// Pool is a fixed-size worker pool of up to n cooperatively scheduled
// workers. It exposes invoke-all-and-join as its only primitive: submit a
// batch of index-keyed tasks, block until every one has completed, and
// surface the first failure (if any) to the caller.
//
// A Pool is safe for concurrent use by multiple goroutines, though the LLP
// orchestrator only ever drives it from a single goroutine (the one running
// the outer fixed-point loop); tasks it dispatches run on their own
// goroutines.
type Pool struct {
	maxWorkers int
	closed     atomic.Bool
	closeOnce  sync.Once
}

// New constructs a Pool capped at maxWorkers cooperatively scheduled
// workers. If maxWorkers <= 0, the cap defaults to runtime.GOMAXPROCS(0).
func New(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}

	return &Pool{maxWorkers: maxWorkers}
}

// NumWorkers returns the pool's worker cap.
func (p *Pool) NumWorkers() int {
	return p.maxWorkers
}

// InvokeAllAndJoin dispatches task(v) for every v in indices and blocks
// until every invocation has completed or any has failed.
//
// Contract:
//   - Returns only when every submitted task has run to completion.
//   - If any task fails, the aggregate call fails with the first observed
//     failure; other tasks still run to completion (their errors are
//     discarded), but the caller must not observe partial writes from a
//     failed task after the join — that guarantee is the caller's
//     responsibility to uphold by partitioning writes by index.
//   - No ordering guarantee among tasks of the same batch.
//
// A nil indices slice or empty batch returns nil immediately without
// spawning any goroutine. Calling InvokeAllAndJoin after Close still runs
// the batch — Close only records that the pool was released; the pool
// carries no executable state that needs to be torn down eagerly.
func (p *Pool) InvokeAllAndJoin(indices []int, task Task) error {
	if len(indices) == 0 {
		return nil
	}

	workers := p.maxWorkers
	if workers > len(indices) {
		workers = len(indices)
	}
	if workers < 1 {
		workers = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, v := range indices {
		v := v
		g.Go(func() error {
			return task(v)
		})
	}

	return g.Wait()
}

// InvokeRangeAndJoin is InvokeAllAndJoin over the dense range [0, n),
// avoiding the allocation of an explicit index slice for the common case of
// sweeping every coordinate (used by collectForbidden).
func (p *Pool) InvokeRangeAndJoin(n int, task Task) error {
	if n <= 0 {
		return nil
	}

	workers := p.maxWorkers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	var next atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var firstErr error
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return firstErr
				}
				if err := task(i); err != nil && firstErr == nil {
					firstErr = err
				}
			}
		})
	}

	return g.Wait()
}

// Close releases the pool's resources. It is idempotent and safe to call
// multiple times. Close must be called on every exit path of the owning
// algorithm instance, including failure.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
	})
}

// Closed reports whether Close has been called.
func (p *Pool) Closed() bool {
	return p.closed.Load()
}
