package coverio

import (
	"bufio"
	"io"
	"strings"

	"github.com/dd0wney/cluso-overlap/pkg/graph"
)

// scanLines calls fn for every non-blank, non-comment line split on whitespace
func scanLines(r io.Reader, fn func(fields []string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(strings.Fields(text)); err != nil {
			return &ParseError{Line: line, Text: text, Cause: err}
		}
	}
	return scanner.Err()
}

// ReadEdgeList parses an undirected edge list: two node names per line.
// Extra columns such as weights are ignored.
func ReadEdgeList(r io.Reader) ([]graph.Edge, error) {
	var edges []graph.Edge
	err := scanLines(r, func(fields []string) error {
		if len(fields) < 2 {
			return ErrMalformedLine
		}
		edges = append(edges, graph.Edge{From: graph.NodeID(fields[0]), To: graph.NodeID(fields[1])})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return edges, nil
}

// LoadGraph reads an edge list file and doubles every pair into a DiGraph
func LoadGraph(path string) (*graph.DiGraph, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	edges, err := ReadEdgeList(f)
	if err != nil {
		return nil, err
	}
	return graph.FromUndirected(edges), nil
}
