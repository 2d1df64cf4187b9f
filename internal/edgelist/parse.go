// Package edgelist reads the external edge-list input format: one
// undirected edge per line, two whitespace-separated unsigned 32-bit
// integers. Blank lines are skipped; duplicate lines and self-loops are
// passed through unchanged — cgraph.Graph's set semantics collapse
// duplicate edges on insertion, and a self-loop is a meaningful (if
// inert) edge rather than malformed input.
//
// This package has no relationship to the core algorithm: its only
// contract with the rest of the pipeline is producing a []cgraph.Edge
// from a reader.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/ccgraph/cgraph"
)

// ParseError reports the 1-indexed line a malformed edge was found on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("edgelist: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads every edge from r.
func Parse(r io.Reader) ([]cgraph.Edge, error) {
	scanner := bufio.NewScanner(r)
	var edges []cgraph.Edge

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("expected 2 fields, got %d", len(fields))}
		}

		u, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("parsing first vertex: %w", err)}
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("parsing second vertex: %w", err)}
		}

		edges = append(edges, cgraph.Edge{U: cgraph.VertexID(u), V: cgraph.VertexID(v)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: reading input: %w", err)
	}

	return edges, nil
}
