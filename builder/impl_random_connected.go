// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random_connected.go — RandomConnected(n, m) constructor.
//
// Model:
//   - A spanning chain over a random permutation of 0..n-1 guarantees
//     connectivity with n-1 edges.
//   - m-(n-1) further distinct, loop-free pairs are added at random.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - n-1 ≤ m ≤ n(n-1)/2 (else ErrTooFewEdges / ErrTooManyEdges).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Determinism:
//   - Same seed ⇒ same permutation, extras and weights.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spantree/graph"
)

type pair struct{ u, v int }

func newPair(u, v int) pair {
	if u > v {
		u, v = v, u
	}

	return pair{u, v}
}

// RandomConnected returns a Constructor for a random connected simple graph
// with n vertices and exactly m edges.
// Complexity: O(n + m) expected; O(n²) when m is close to n(n-1)/2.
func RandomConnected(n, m int) Constructor {
	return func(cfg builderConfig) ([]graph.Edge, error) {
		if err := validateMin(MethodRandomConnected, "n", n, MinRandomNodes); err != nil {
			return nil, err
		}
		if m < n-1 {
			return nil, fmt.Errorf("%s: m=%d < n-1=%d: %w", MethodRandomConnected, m, n-1, ErrTooFewEdges)
		}
		maxEdges := n * (n - 1) / 2
		if m > maxEdges {
			return nil, fmt.Errorf("%s: m=%d > n(n-1)/2=%d: %w", MethodRandomConnected, m, maxEdges, ErrTooManyEdges)
		}
		if cfg.rng == nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomConnected, ErrNeedRandSource)
		}

		edges := make([]graph.Edge, 0, m)
		used := make(map[pair]struct{}, m)

		order := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			u, v := order[i-1], order[i]
			used[newPair(u, v)] = struct{}{}
			edges = append(edges, graph.NewEdge(u, v, cfg.weight()))
		}

		for _, p := range extraPairs(cfg.rng, n, m-(n-1), maxEdges-(n-1), used) {
			edges = append(edges, graph.NewEdge(p.u, p.v, cfg.weight()))
		}

		return edges, nil
	}
}

// extraPairs picks k distinct pairs absent from used. free is the number of
// pairs still available. Dense requests enumerate and shuffle the free pairs;
// sparse ones use rejection sampling.
func extraPairs(rng *rand.Rand, n, k, free int, used map[pair]struct{}) []pair {
	if k == 0 {
		return nil
	}
	out := make([]pair, 0, k)

	if 2*k > free {
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if _, ok := used[pair{u, v}]; !ok {
					out = append(out, pair{u, v})
				}
			}
		}
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

		return out[:k]
	}

	for len(out) < k {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		p := newPair(u, v)
		if _, ok := used[p]; ok {
			continue
		}
		used[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
