// Package executor provides the parallel executor that backs the LLP
// orchestrator: a bounded worker pool exposing a single primitive,
// invoke-all-and-join, which dispatches a set of index-keyed tasks and
// blocks until every one has completed or any has failed.
//
// Tasks within one call are unordered and must not write to coordinates
// other than their own index; the Pool only guarantees that the call
// returns after every task has run (success) or after the first failure
// has been observed (the rest are still drained, their results discarded).
package executor
