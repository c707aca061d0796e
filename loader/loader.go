package loader

import (
	"bufio"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/llp/graph"
	"github.com/katalvlaran/llp/llperr"
)

// lineSource wraps a bufio.Scanner with 1-based line tracking, so every
// parse error can report where it happened.
type lineSource struct {
	sc     *bufio.Scanner
	path   string
	lineNo int
}

func openLines(path string) (*lineSource, *os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, llperr.NewInputFormatError(path, 0, err.Error())
	}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	return &lineSource{sc: sc, path: path}, f, nil
}

// next returns the next raw line, or ok=false at EOF.
func (s *lineSource) next() (string, bool) {
	if !s.sc.Scan() {
		return "", false
	}
	s.lineNo++
	return s.sc.Text(), true
}

// nextNonEmpty skips blank lines and returns the next non-blank one,
// trimmed.
func (s *lineSource) nextNonEmpty() (string, bool) {
	for {
		line, ok := s.next()
		if !ok {
			return "", false
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, true
		}
	}
}

func (s *lineSource) errf(reason string) error {
	return llperr.NewInputFormatError(s.path, s.lineNo, reason)
}

func parseInt(s, reason string, src *lineSource) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, src.errf(reason + ": " + err.Error())
	}
	return n, nil
}

func splitFields(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return fields
}

// parseIntList splits s on commas and/or whitespace into int64s. "*" or an
// empty string (after trimming) yields an empty, non-error list.
func parseIntList(s string, src *lineSource) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return nil, nil
	}

	fields := splitFields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := parseInt(f, "expected an integer list", src)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// LoadIntArray parses the integer-array format: a first non-empty line
// giving n, followed by n whitespace-separated integers
// spread across any number of lines. Since both the header and the
// values are whitespace-delimited, the whole file is read as one token
// stream rather than line-by-line (reusing a second bufio.Scanner over
// the same *os.File after the first one has buffered ahead would silently
// drop bytes).
func LoadIntArray(path string) (*graph.IntArray, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, llperr.NewInputFormatError(path, 0, err.Error())
	}
	defer f.Close()

	errf := func(reason string) error { return llperr.NewInputFormatError(path, 0, reason) }

	words := bufio.NewScanner(f)
	words.Buffer(make([]byte, 0, 64*1024), 1<<20)
	words.Split(bufio.ScanWords)

	if !words.Scan() {
		return nil, errf("missing array length")
	}
	n, err := strconv.ParseInt(words.Text(), 10, 64)
	if err != nil {
		return nil, errf("array length: " + err.Error())
	}
	if n < 0 {
		return nil, errf("array length must be non-negative")
	}

	values := make([]int64, 0, n)
	for int64(len(values)) < n {
		if !words.Scan() {
			return nil, errf("truncated: expected more array values")
		}
		v, err := strconv.ParseInt(words.Text(), 10, 64)
		if err != nil {
			return nil, errf("array value: " + err.Error())
		}
		values = append(values, v)
	}

	return graph.NewIntArray(values), nil
}

// LoadDirectedMatrix parses the weighted-directed-graph matrix format: a
// first line n, then for each vertex v in [0,n) a pair of lines —
// comma-separated destinations, then comma-separated weights.
func LoadDirectedMatrix(path string) (*graph.WeightedDigraph, error) {
	src, f, err := openLines(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, ok := src.nextNonEmpty()
	if !ok {
		return nil, src.errf("missing vertex count")
	}
	n64, err := parseInt(header, "vertex count", src)
	if err != nil {
		return nil, err
	}
	if n64 <= 0 {
		return nil, src.errf("vertex count must be positive")
	}
	n := int(n64)

	g, err := graph.NewWeightedDigraph(n)
	if err != nil {
		return nil, err
	}

	for v := 0; v < n; v++ {
		destLine, ok := src.next()
		if !ok {
			return nil, src.errf("missing destination line for vertex")
		}
		dests, err := parseIntList(destLine, src)
		if err != nil {
			return nil, err
		}

		weightLine, ok := src.next()
		if !ok {
			return nil, src.errf("missing weight line for vertex")
		}
		weights, err := parseIntList(weightLine, src)
		if err != nil {
			return nil, err
		}

		if len(dests) != len(weights) {
			return nil, src.errf("destination/weight count mismatch")
		}

		for i, d := range dests {
			if d < 0 || d >= int64(n) {
				return nil, src.errf("destination index out of range")
			}
			if err := g.AddEdge(v, int(d), weights[i]); err != nil {
				return nil, src.errf(err.Error())
			}
		}
	}

	return g, nil
}

// LoadUnweightedUndirected parses the unweighted-undirected format: a
// first line n, then for each vertex one line of comma/whitespace-
// separated neighbors. A neighbor may legitimately be listed on only one
// of its two endpoints' lines, so every pair is symmetrized here rather
// than assumed to already appear twice; each unordered pair is added at
// most once regardless of how many times it's mentioned.
func LoadUnweightedUndirected(path string) (*graph.UndirectedGraph, error) {
	src, f, err := openLines(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, ok := src.nextNonEmpty()
	if !ok {
		return nil, src.errf("missing vertex count")
	}
	n64, err := parseInt(header, "vertex count", src)
	if err != nil {
		return nil, err
	}
	if n64 <= 0 {
		return nil, src.errf("vertex count must be positive")
	}
	n := int(n64)

	g, err := graph.NewUndirectedGraph(n)
	if err != nil {
		return nil, err
	}

	type pair struct{ a, b int }
	seen := make(map[pair]bool)

	for v := 0; v < n; v++ {
		line, ok := src.next()
		if !ok {
			return nil, src.errf("missing neighbor line for vertex")
		}
		neighbors, err := parseIntList(line, src)
		if err != nil {
			return nil, err
		}
		for _, u64 := range neighbors {
			if u64 < 0 || u64 >= int64(n) {
				return nil, src.errf("neighbor index out of range")
			}
			u := int(u64)
			p := pair{v, u}
			if u < v {
				p = pair{u, v}
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			if err := g.AddEdge(v, u); err != nil {
				return nil, src.errf(err.Error())
			}
		}
	}

	return g, nil
}

// LoadWeightedUndirectedEdgeList parses the weighted-undirected edge-list
// format: line 1 n, line 2 m, then m lines each "u v w".
func LoadWeightedUndirectedEdgeList(path string) (*graph.WeightedUndirectedGraph, error) {
	src, f, err := openLines(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nLine, ok := src.nextNonEmpty()
	if !ok {
		return nil, src.errf("missing vertex count")
	}
	n64, err := parseInt(nLine, "vertex count", src)
	if err != nil {
		return nil, err
	}
	if n64 <= 0 {
		return nil, src.errf("vertex count must be positive")
	}

	mLine, ok := src.nextNonEmpty()
	if !ok {
		return nil, src.errf("missing edge count")
	}
	m64, err := parseInt(mLine, "edge count", src)
	if err != nil {
		return nil, err
	}
	if m64 < 0 {
		return nil, src.errf("edge count must be non-negative")
	}

	g, err := graph.NewWeightedUndirectedGraph(int(n64))
	if err != nil {
		return nil, err
	}

	for i := int64(0); i < m64; i++ {
		line, ok := src.next()
		if !ok {
			return nil, src.errf("truncated: expected more edges")
		}
		fields := splitFields(line)
		if len(fields) != 3 {
			return nil, src.errf("expected \"u v w\"")
		}

		u, err := parseInt(fields[0], "edge endpoint", src)
		if err != nil {
			return nil, err
		}
		v, err := parseInt(fields[1], "edge endpoint", src)
		if err != nil {
			return nil, err
		}
		w, err := parseInt(fields[2], "edge weight", src)
		if err != nil {
			return nil, err
		}

		if u < 0 || u >= n64 || v < 0 || v >= n64 {
			return nil, src.errf("edge endpoint out of range")
		}
		if err := g.AddEdge(int(u), int(v), w); err != nil {
			return nil, src.errf(err.Error())
		}
	}

	return g, nil
}

// LoadMatching parses the stable-matching preference format: line 1 n,
// then n lines of proposers' preferences (n whitespace-
// separated responder indices, most preferred first), then n lines of
// responders' preferences in the same shape. Only the proposers'
// preferences are structurally required by galeshapley.New; responders'
// preferences are returned alongside for callers that need them (e.g. a
// stability check).
func LoadMatching(path string) (proposerPrefs, responderPrefs [][]int, err error) {
	src, f, err := openLines(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	header, ok := src.nextNonEmpty()
	if !ok {
		return nil, nil, src.errf("missing side size")
	}
	n64, err := parseInt(header, "side size", src)
	if err != nil {
		return nil, nil, err
	}
	if n64 <= 0 {
		return nil, nil, src.errf("side size must be positive")
	}
	n := int(n64)

	readSide := func() ([][]int, error) {
		side := make([][]int, n)
		for i := 0; i < n; i++ {
			line, ok := src.next()
			if !ok {
				return nil, src.errf("missing preference line")
			}
			fields := splitFields(line)
			if len(fields) != n {
				return nil, src.errf("preference list must name every responder exactly once")
			}
			prefs := make([]int, n)
			for j, field := range fields {
				v, err := parseInt(field, "preference entry", src)
				if err != nil {
					return nil, err
				}
				if v < 0 || v >= n64 {
					return nil, src.errf("preference entry out of range")
				}
				prefs[j] = int(v)
			}
			side[i] = prefs
		}
		return side, nil
	}

	proposerPrefs, err = readSide()
	if err != nil {
		return nil, nil, err
	}
	responderPrefs, err = readSide()
	if err != nil {
		return nil, nil, err
	}

	return proposerPrefs, responderPrefs, nil
}
