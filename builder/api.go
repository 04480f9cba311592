// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go — public entry points: Edges and Build.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/graph"
)

// Constructor emits an edge list for the resolved builderConfig. Constructors
// validate their parameters first and return wrapped sentinel errors; they
// never panic.
type Constructor func(cfg builderConfig) ([]graph.Edge, error)

// Edges resolves opts and runs c, returning the raw edge list in emission
// order.
func Edges(c Constructor, opts ...BuilderOption) ([]graph.Edge, error) {
	if c == nil {
		return nil, fmt.Errorf("Edges: nil constructor: %w", ErrNilConstructor)
	}
	edges, err := c(newBuilderConfig(opts...))
	if err != nil {
		return nil, fmt.Errorf("Edges: %w", err)
	}

	return edges, nil
}

// Build is Edges followed by graph.FromEdges.
func Build(c Constructor, opts ...BuilderOption) (*graph.Graph, error) {
	edges, err := Edges(c, opts...)
	if err != nil {
		return nil, err
	}

	return graph.FromEdges(edges), nil
}

// validateMin returns ErrTooFewVertices if got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
	}

	return nil
}
