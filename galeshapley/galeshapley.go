package galeshapley

import (
	"github.com/katalvlaran/llp/executor"
)

// Instance is the Gale–Shapley stable-matching conformance instance.
// Proposers and responders are both dense integer ranges; proposerPrefs
// gives each proposer's responders in strict preference order.
type Instance struct {
	proposerPrefs  [][]int
	responderRank  [][]int // responderRank[r][p] = rank of proposer p for responder r
	next           []int   // next index into proposerPrefs[p] to try
	proposerMatch  []int   // -1 if unmatched
	responderMatch []int   // -1 if unmatched

	numProposers, numResponders int

	proposalFor []int // scratch: who p is proposing to this round, -1 if none

	pool   *executor.Pool
	closed bool
}

// New constructs a Gale–Shapley instance. proposerPrefs[p] must be a
// permutation of [0, numResponders). maxWorkers bounds the internal
// worker pool (0 defaults to GOMAXPROCS).
func New(proposerPrefs [][]int, numResponders, maxWorkers int) *Instance {
	numProposers := len(proposerPrefs)

	responderRank := make([][]int, numResponders)
	for r := range responderRank {
		responderRank[r] = make([]int, numProposers)
	}
	for p, prefs := range proposerPrefs {
		for rank, r := range prefs {
			responderRank[r][p] = rank
		}
	}

	proposerMatch := make([]int, numProposers)
	next := make([]int, numProposers)
	for p := range proposerMatch {
		proposerMatch[p] = -1
	}
	responderMatch := make([]int, numResponders)
	for r := range responderMatch {
		responderMatch[r] = -1
	}

	return &Instance{
		proposerPrefs:  proposerPrefs,
		responderRank:  responderRank,
		next:           next,
		proposerMatch:  proposerMatch,
		responderMatch: responderMatch,
		numProposers:   numProposers,
		numResponders:  numResponders,
		proposalFor:    make([]int, numProposers),
		pool:           executor.New(maxWorkers),
	}
}

// Solve runs rounds of parallel proposing followed by sequential
// acceptance until no unmatched proposer has a responder left to propose
// to: every proposer-owned write in the parallel phase targets only that
// proposer's own slot, so the phase is race-free without staging through
// a combine step.
func (in *Instance) Solve() error {
	for {
		err := in.pool.InvokeRangeAndJoin(in.numProposers, func(p int) error {
			in.proposalFor[p] = -1
			if in.proposerMatch[p] != -1 {
				return nil
			}
			if in.next[p] >= len(in.proposerPrefs[p]) {
				return nil
			}
			in.proposalFor[p] = in.proposerPrefs[p][in.next[p]]
			in.next[p]++
			return nil
		})
		if err != nil {
			return err
		}

		anyProposal := false
		for _, r := range in.proposalFor {
			if r != -1 {
				anyProposal = true
				break
			}
		}
		if !anyProposal {
			return nil
		}

		for p := 0; p < in.numProposers; p++ {
			r := in.proposalFor[p]
			if r == -1 {
				continue
			}

			cur := in.responderMatch[r]
			if cur == -1 || in.responderRank[r][p] < in.responderRank[r][cur] {
				if cur != -1 {
					in.proposerMatch[cur] = -1
				}
				in.responderMatch[r] = p
				in.proposerMatch[p] = r
			}
		}
	}
}

// Close releases the instance's worker pool.
func (in *Instance) Close() {
	if in.closed {
		return
	}
	in.closed = true
	in.pool.Close()
}

// Result returns proposerMatch: Result()[p] is the responder matched to
// proposer p, or -1 if p exhausted its preference list unmatched.
func (in *Instance) Result() []int {
	out := make([]int, in.numProposers)
	copy(out, in.proposerMatch)
	return out
}
