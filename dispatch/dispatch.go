package dispatch

import (
	"fmt"

	"github.com/katalvlaran/llp/bellmanford"
	"github.com/katalvlaran/llp/boruvka"
	"github.com/katalvlaran/llp/fastcomp"
	"github.com/katalvlaran/llp/galeshapley"
	"github.com/katalvlaran/llp/johnson"
	"github.com/katalvlaran/llp/llperr"
	"github.com/katalvlaran/llp/loader"
	"github.com/katalvlaran/llp/prefixsum"
	"github.com/katalvlaran/llp/reduce"
)

// Result is the dispatcher's tagged-union output: either an integer
// vector, or NoResult set with a human-readable Reason — used for
// Bellman-Ford/Johnson's negative-cycle diagnostic, never for errors.
type Result struct {
	Values   []int64
	NoResult bool
	Reason   string
}

// Options configures a dispatch.Run call.
type Options struct {
	// MaxWorkers bounds every instance's internal worker pool (0 defaults
	// to GOMAXPROCS).
	MaxWorkers int

	// Source is the Bellman-Ford source vertex (default 0).
	Source int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxWorkers bounds the worker pool used by the dispatched algorithm.
func WithMaxWorkers(n int) Option {
	return func(o *Options) { o.MaxWorkers = n }
}

// WithSource sets the Bellman-Ford source vertex.
func WithSource(v int) Option {
	return func(o *Options) { o.Source = v }
}

// Run selects an algorithm by name, loads path in that algorithm's input
// format, solves it, and returns the projected Result.
func Run(name, path string, opts ...Option) (Result, error) {
	options := Options{}
	for _, opt := range opts {
		opt(&options)
	}

	switch name {
	case "Reduce":
		return runReduce(path, options)
	case "PrefixSum":
		return runPrefixSum(path, options)
	case "BellmanFord":
		return runBellmanFord(path, options)
	case "Johnson":
		return runJohnson(path, options)
	case "FastComp":
		return runFastComp(path, options)
	case "Boruvka":
		return runBoruvka(path, options)
	case "GaleShapley":
		return runGaleShapley(path, options)
	default:
		return Result{}, fmt.Errorf("%w: %q", llperr.ErrUnknownAlgorithm, name)
	}
}

func runReduce(path string, opts Options) (Result, error) {
	a, err := loader.LoadIntArray(path)
	if err != nil {
		return Result{}, err
	}

	in := reduce.New(a, opts.MaxWorkers)
	defer in.Close()
	if err := in.Solve(); err != nil {
		return Result{}, err
	}

	return Result{Values: in.Result()}, nil
}

func runPrefixSum(path string, opts Options) (Result, error) {
	a, err := loader.LoadIntArray(path)
	if err != nil {
		return Result{}, err
	}

	in := prefixsum.New(a, opts.MaxWorkers)
	defer in.Close()
	if err := in.Solve(); err != nil {
		return Result{}, err
	}

	return Result{Values: in.Result()}, nil
}

func runBellmanFord(path string, opts Options) (Result, error) {
	g, err := loader.LoadDirectedMatrix(path)
	if err != nil {
		return Result{}, err
	}

	in := bellmanford.New(g, opts.Source, opts.MaxWorkers)
	defer in.Close()
	if err := in.Solve(); err != nil {
		return Result{}, err
	}

	dist, err := in.Result()
	if err != nil {
		return Result{NoResult: true, Reason: err.Error()}, nil
	}
	return Result{Values: dist}, nil
}

func runJohnson(path string, opts Options) (Result, error) {
	g, err := loader.LoadDirectedMatrix(path)
	if err != nil {
		return Result{}, err
	}

	in := johnson.New(g, opts.MaxWorkers)
	defer in.Close()
	if err := in.Solve(); err != nil {
		return Result{}, err
	}

	price, err := in.Result()
	if err != nil {
		return Result{NoResult: true, Reason: err.Error()}, nil
	}
	return Result{Values: price}, nil
}

func runFastComp(path string, opts Options) (Result, error) {
	g, err := loader.LoadUnweightedUndirected(path)
	if err != nil {
		return Result{}, err
	}

	in := fastcomp.New(g, opts.MaxWorkers)
	defer in.Close()
	if err := in.Solve(); err != nil {
		return Result{}, err
	}

	return Result{Values: toInt64(in.Result())}, nil
}

func runBoruvka(path string, opts Options) (Result, error) {
	g, err := loader.LoadWeightedUndirectedEdgeList(path)
	if err != nil {
		return Result{}, err
	}

	in := boruvka.New(g, opts.MaxWorkers)
	defer in.Close()
	if err := in.Solve(); err != nil {
		return Result{}, err
	}

	return Result{Values: toInt64(in.Result())}, nil
}

func runGaleShapley(path string, opts Options) (Result, error) {
	proposerPrefs, _, err := loader.LoadMatching(path)
	if err != nil {
		return Result{}, err
	}

	in := galeshapley.New(proposerPrefs, len(proposerPrefs), opts.MaxWorkers)
	defer in.Close()
	if err := in.Solve(); err != nil {
		return Result{}, err
	}

	return Result{Values: toInt64(in.Result())}, nil
}

func toInt64(vs []int) []int64 {
	out := make([]int64, len(vs))
	for i, v := range vs {
		out[i] = int64(v)
	}
	return out
}
