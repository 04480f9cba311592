// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go — Complete(n) constructor.

package builder

import "github.com/katalvlaran/spantree/graph"

// Complete returns a Constructor for K_n: every pair {i, j}, i < j, emitted
// for i ascending then j ascending.
// Complexity: O(n²), n(n-1)/2 edges.
func Complete(n int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return nil, err
		}
		edges := make([]graph.Edge, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				edges = append(edges, graph.NewEdge(i, j, cfg.weight()))
			}
		}

		return edges, nil
	}
}
