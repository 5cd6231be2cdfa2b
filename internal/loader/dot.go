package loader

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// edgeLine matches `FROM -> TO [label="W"]` and accepts seconds= or weight=
// in place of label=. A name is either a Go-quoted string, which may carry
// escapes, or a bare token. Groups: 1/2 quoted/bare FROM, 3/4 quoted/bare TO,
// 5 the weight.
var edgeLine = regexp.MustCompile(
	`^\s*(?:"((?:[^"\\]|\\.)*)"|([^"]*?))\s*->\s*(?:"((?:[^"\\]|\\.)*)"|([^"]*?))` +
		`\s*\[\s*(?:label|seconds|weight)\s*=\s*"?([^"\]\s]+)"?\s*\]\s*;?\s*$`)

// ParseDOT reads a DOT digraph and returns its edges in file order.
//
// Only lines containing "->" are considered; headers, braces, blank lines and
// // comments are skipped. A line that contains "->" but does not match the
// edge grammar, names an empty location or carries an unparsable or negative
// weight fails with ErrSyntax and its 1-based line number.
func ParseDOT(r io.Reader) ([]Edge, error) {
	var (
		edges []Edge
		line  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := sc.Text()
		if trimmed := strings.TrimSpace(text); strings.HasPrefix(trimmed, "//") || !strings.Contains(text, "->") {
			continue
		}

		m := edgeLine.FindStringSubmatchIndex(text)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrSyntax, line, text)
		}
		from, err := locationName(text, m, 1)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
		}
		to, err := locationName(text, m, 3)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
		}
		if from == "" || to == "" {
			return nil, fmt.Errorf("%w: line %d: empty location name", ErrSyntax, line)
		}
		weight := text[m[10]:m[11]]
		w, err := strconv.ParseFloat(weight, 64)
		if err != nil || w < 0 || w != w {
			return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrSyntax, line, weight)
		}
		edges = append(edges, Edge{From: from, To: to, Weight: w})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return edges, nil
}

// locationName extracts the name held by the quoted group g or, when that
// group did not take part in the match, the bare group g+1.
func locationName(text string, m []int, g int) (string, error) {
	if m[2*g] >= 0 {
		return strconv.Unquote(`"` + text[m[2*g]:m[2*g+1]] + `"`)
	}

	return strings.TrimSpace(text[m[2*g+2]:m[2*g+3]]), nil
}

// WriteDOT emits edges as a digraph that ParseDOT reads back unchanged.
func WriteDOT(w io.Writer, name string, edges []Edge) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", strconv.Quote(name))
	for _, e := range edges {
		fmt.Fprintf(bw, "    %s -> %s [label=\"%s\"];\n",
			strconv.Quote(e.From), strconv.Quote(e.To), strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
