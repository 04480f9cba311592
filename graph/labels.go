package graph

import (
	"fmt"
	"strconv"
)

// alphabetSize is the number of distinct single-letter labels.
const alphabetSize = 26

// VertexIndex maps a case-insensitive letter to its vertex index:
// 'A'/'a' → 0 … 'Z'/'z' → 25. Any other rune yields ErrInvalidLabel.
func VertexIndex(label rune) (int, error) {
	switch {
	case label >= 'A' && label <= 'Z':
		return int(label - 'A'), nil
	case label >= 'a' && label <= 'z':
		return int(label - 'a'), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
}

// VertexLabel is the inverse of VertexIndex for 0..25 (upper case). Other
// indices are rendered in decimal.
func VertexLabel(v int) string {
	if v >= 0 && v < alphabetSize {
		return string(rune('A' + v))
	}

	return strconv.Itoa(v)
}

// FromLabeledEdges maps every label with VertexIndex and builds the graph
// with FromEdges. The first invalid label aborts construction; the error
// wraps ErrInvalidLabel and names the offending edge position.
func FromLabeledEdges(edges []LabeledEdge) (*Graph, error) {
	indexed := make([]Edge, len(edges))
	for i, le := range edges {
		start, err := VertexIndex(le.Start)
		if err != nil {
			return nil, fmt.Errorf("graph: labeled edge %d start: %w", i, err)
		}
		end, err := VertexIndex(le.End)
		if err != nil {
			return nil, fmt.Errorf("graph: labeled edge %d end: %w", i, err)
		}
		indexed[i] = NewEdge(start, end, le.Weight)
	}

	return FromEdges(indexed), nil
}

// MustFromLabeledEdges is like FromLabeledEdges but panics on an invalid
// label. Intended for fixed fixtures.
func MustFromLabeledEdges(edges []LabeledEdge) *Graph {
	g, err := FromLabeledEdges(edges)
	if err != nil {
		panic(err)
	}

	return g
}
