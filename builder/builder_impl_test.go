// Package builder_test verifies the topology constructors: edge counts,
// endpoints, weights and validation errors.
package builder_test

import (
	"testing"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuilders_Functional runs every deterministic constructor and checks
// vertex count, canonical edge count, connectivity and default weights.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Path(4)", builder.Path(4), 4, 3},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(6)", builder.Star(6), 6, 5},
		{"Wheel(5)", builder.Wheel(5), 5, 8},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"Grid(3x4)", builder.Grid(3, 4), 12, 17},
		{"Grid(1x2)", builder.Grid(1, 2), 2, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.Build(tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, 1, g.Components(), "generated topologies are connected")
			assert.Equal(t, graph.Weight(tc.wantE)*builder.DefaultEdgeWeight, g.TotalWeight())
		})
	}
}

// TestPath_Endpoints checks the exact emission order of Path and Cycle.
func TestPath_Endpoints(t *testing.T) {
	edges, err := builder.Edges(builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{graph.NewEdge(0, 1, 1), graph.NewEdge(1, 2, 1)}, edges)

	edges, err = builder.Edges(builder.Cycle(3), builder.WithWeightFn(builder.ConstantWeightFn(7)))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{graph.NewEdge(0, 1, 7), graph.NewEdge(1, 2, 7), graph.NewEdge(2, 0, 7)}, edges)
}

// TestGrid_Layout checks row-major indices: right neighbour, then down.
func TestGrid_Layout(t *testing.T) {
	edges, err := builder.Edges(builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{
		graph.NewEdge(0, 1, 1), graph.NewEdge(0, 2, 1),
		graph.NewEdge(1, 3, 1), graph.NewEdge(2, 3, 1),
	}, edges)
}

// TestWheel_HubDegree verifies that the hub touches every rim vertex once.
func TestWheel_HubDegree(t *testing.T) {
	g, err := builder.Build(builder.Wheel(7))
	require.NoError(t, err)
	assert.Len(t, g.Neighbors(0), 6)
	for rim := 1; rim < 7; rim++ {
		assert.Len(t, g.Neighbors(rim), 3, "rim vertex %d: two ring neighbours plus hub", rim)
	}
}

// TestValidation covers the sentinel errors of every constructor.
func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(1)", builder.Complete(1), nil, builder.ErrTooFewVertices},
		{"Grid(0x3)", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"Grid(1x1)", builder.Grid(1, 1), nil, builder.ErrTooFewVertices},
		{"RandomConnected(1,0)", builder.RandomConnected(1, 0), nil, builder.ErrTooFewVertices},
		{"RandomConnected(5,3)", builder.RandomConnected(5, 3), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewEdges},
		{"RandomConnected(4,7)", builder.RandomConnected(4, 7), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooManyEdges},
		{"RandomConnected/no rng", builder.RandomConnected(4, 4), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrNilConstructor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.ctor, tc.opts...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRandomConnected_Shape checks size, connectivity, simplicity and
// reproducibility for several densities, including the complete case.
func TestRandomConnected_Shape(t *testing.T) {
	for _, tc := range []struct{ n, m int }{{2, 1}, {10, 9}, {10, 20}, {10, 40}, {10, 45}, {50, 200}} {
		opts := []builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithWeightFn(builder.UniformWeightFn(1, 100)),
		}
		edges, err := builder.Edges(builder.RandomConnected(tc.n, tc.m), opts...)
		require.NoError(t, err)
		require.Len(t, edges, tc.m)

		seen := make(map[graph.Edge]bool)
		for _, e := range edges {
			require.NotEqual(t, e.Start, e.End, "no self-loops")
			key := graph.NewEdge(e.Start, e.End, 0).Canonical()
			require.False(t, seen[key], "no parallel edges: %v", key)
			seen[key] = true
			require.GreaterOrEqual(t, e.Weight, graph.Weight(1))
			require.LessOrEqual(t, e.Weight, graph.Weight(100))
		}

		g := graph.FromEdges(edges)
		assert.Equal(t, tc.n, g.VertexCount())
		assert.Equal(t, 1, g.Components())

		again, err := builder.Edges(builder.RandomConnected(tc.n, tc.m), opts...)
		require.NoError(t, err)
		assert.Equal(t, edges, again, "same seed must reproduce the same edges")
	}
}
