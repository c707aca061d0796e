// Package dispatch implements the algorithm dispatcher: given an
// algorithm name and an input-file path, it loads the matching file
// format, builds and solves the algorithm instance, and projects the
// outcome to a Result — a tagged union of an integer vector or a
// "no result" diagnostic (the negative-cycle policy: never an error,
// always a distinguished result value).
package dispatch
