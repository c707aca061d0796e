// Package loader parses the five text input-file formats the dispatcher
// accepts: an integer array, a weighted directed graph in dense matrix
// form, an unweighted undirected graph, a weighted undirected edge list,
// and a two-sided stable-matching preference table.
//
// Every parse failure is reported as an *llperr.InputFormatError carrying
// the source path and, where meaningful, a 1-based line number, surfaced
// before any worker starts.
package loader
