// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_wheel.go — Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Rim: cycle over 1..n-1 emitted first, (i)–(i+1) then (n-1)–1.
//   - Spokes: hub 0 to 1..n-1, emitted after the rim.

package builder

import "github.com/katalvlaran/spantree/graph"

// Wheel returns a Constructor for W_n: an (n-1)-ring plus hub 0.
// Complexity: O(n), 2(n-1) edges.
func Wheel(n int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return nil, err
		}
		edges := make([]graph.Edge, 0, 2*(n-1))
		for i := 1; i < n-1; i++ {
			edges = append(edges, graph.NewEdge(i, i+1, cfg.weight()))
		}
		edges = append(edges, graph.NewEdge(n-1, 1, cfg.weight()))
		for rim := 1; rim < n; rim++ {
			edges = append(edges, graph.NewEdge(hubVertex, rim, cfg.weight()))
		}

		return edges, nil
	}
}
