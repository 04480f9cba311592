package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_Panics verifies fail-fast option constructors.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
}

// TestWeightFns checks the bundled weight policies.
func TestWeightFns(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, graph.Weight(9), builder.ConstantWeightFn(9)(rand.New(rand.NewSource(1))))

	uniform := builder.UniformWeightFn(3, 5)
	assert.Equal(t, graph.Weight(3), uniform(nil), "nil rng falls back to min")

	r := rand.New(rand.NewSource(3))
	hits := make(map[graph.Weight]bool)
	for i := 0; i < 200; i++ {
		w := uniform(r)
		require.GreaterOrEqual(t, w, graph.Weight(3))
		require.LessOrEqual(t, w, graph.Weight(5))
		hits[w] = true
	}
	assert.Len(t, hits, 3, "both bounds are inclusive")

	assert.Equal(t, graph.Weight(4), builder.UniformWeightFn(4, 4)(r))
}

// TestWithRand_SharedSource shows that an explicit RNG is consumed across
// builds, while WithSeed restarts the stream on every build.
func TestWithRand_SharedSource(t *testing.T) {
	weights := builder.WithWeightFn(builder.UniformWeightFn(1, 1000))

	seeded1, err := builder.Edges(builder.Path(20), builder.WithSeed(5), weights)
	require.NoError(t, err)
	seeded2, err := builder.Edges(builder.Path(20), builder.WithSeed(5), weights)
	require.NoError(t, err)
	assert.Equal(t, seeded1, seeded2)

	r := rand.New(rand.NewSource(5))
	shared1, err := builder.Edges(builder.Path(20), builder.WithRand(r), weights)
	require.NoError(t, err)
	assert.Equal(t, seeded1, shared1, "same seed, same first stream")
	shared2, err := builder.Edges(builder.Path(20), builder.WithRand(r), weights)
	require.NoError(t, err)
	assert.NotEqual(t, shared1, shared2, "the shared source has advanced")
}
