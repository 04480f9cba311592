// Package builder: edge-weight distributions.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/spantree/graph"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight graph.Weight = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) graph.Weight

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) graph.Weight {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields w.
func ConstantWeightFn(w graph.Weight) WeightFn {
	return func(_ *rand.Rand) graph.Weight {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max]. With a nil RNG it yields min.
// Panics if max < min or if the interval is wider than math.MaxInt64.
func UniformWeightFn(min, max graph.Weight) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min
	if span >= math.MaxInt64 {
		panic(fmt.Sprintf("UniformWeightFn: interval [%d,%d] too wide", min, max))
	}

	return func(rng *rand.Rand) graph.Weight {
		if rng == nil || span == 0 {
			return min
		}

		return min + graph.Weight(rng.Int63n(int64(span)+1))
	}
}

// weight draws the next edge weight from the configured policy.
func (c builderConfig) weight() graph.Weight {
	return c.weightFn(c.rng)
}
