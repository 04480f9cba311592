// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ MinGridDim and rows*cols ≥ 2 (else ErrTooFewVertices).
//   - Vertex (r, c) has index r*cols + c (row-major).
//   - For each cell in row-major order: right neighbour first, then down.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/graph"
)

// Grid returns a Constructor for a rows×cols 4-neighbourhood lattice.
// Complexity: O(rows·cols), rows(cols-1) + cols(rows-1) edges.
func Grid(rows, cols int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return nil, err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return nil, err
		}
		if rows*cols < 2 {
			return nil, fmt.Errorf("%s: %dx%d grid has no edges: %w", MethodGrid, rows, cols, ErrTooFewVertices)
		}

		edges := make([]graph.Edge, 0, rows*(cols-1)+cols*(rows-1))
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					edges = append(edges, graph.NewEdge(v, v+1, cfg.weight()))
				}
				if r+1 < rows {
					edges = append(edges, graph.NewEdge(v, v+cols, cfg.weight()))
				}
			}
		}

		return edges, nil
	}
}
