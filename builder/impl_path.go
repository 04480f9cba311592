// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go — Path, Cycle and Star constructors.
//
// Determinism:
//   - Edges are emitted in increasing vertex order.
//   - Weights are drawn in emission order.

package builder

import "github.com/katalvlaran/spantree/graph"

// Path returns a Constructor for the simple path 0–1–…–(n-1).
// Complexity: O(n).
func Path(n int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return nil, err
		}

		return chain(cfg, n), nil
	}
}

// Cycle returns a Constructor for the ring 0–1–…–(n-1)–0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return nil, err
		}
		edges := chain(cfg, n)

		return append(edges, graph.NewEdge(n-1, 0, cfg.weight())), nil
	}
}

// Star returns a Constructor joining hub 0 to each leaf 1..n-1.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return nil, err
		}
		edges := make([]graph.Edge, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			edges = append(edges, graph.NewEdge(hubVertex, leaf, cfg.weight()))
		}

		return edges, nil
	}
}

// chain emits (i-1)–i for i = 1..n-1.
func chain(cfg builderConfig, n int) []graph.Edge {
	edges := make([]graph.Edge, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, graph.NewEdge(i-1, i, cfg.weight()))
	}

	return edges
}
