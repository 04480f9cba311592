package graph_test

import "github.com/katalvlaran/spantree/graph"

// Reference graphs with known MST weights.

// graph1Edges: 6 vertices, MST weight 14, unique MST.
var graph1Edges = []graph.Edge{
	graph.NewEdge(0, 1, 4),
	graph.NewEdge(0, 2, 3),
	graph.NewEdge(1, 2, 1),
	graph.NewEdge(1, 3, 2),
	graph.NewEdge(2, 3, 4),
	graph.NewEdge(3, 4, 2),
	graph.NewEdge(4, 5, 6),
}

// graph1MSTEdges is the only minimum spanning tree of graph1Edges.
var graph1MSTEdges = []graph.Edge{
	graph.NewEdge(0, 2, 3),
	graph.NewEdge(1, 2, 1),
	graph.NewEdge(1, 3, 2),
	graph.NewEdge(3, 4, 2),
	graph.NewEdge(4, 5, 6),
}

// graph2Edges: 9 vertices, MST weight 23. 1–3 and 2–3 tie at weight 3, so
// the tree is not unique.
var graph2Edges = []graph.Edge{
	graph.NewEdge(0, 1, 5),
	graph.NewEdge(0, 2, 2),
	graph.NewEdge(1, 2, 2),
	graph.NewEdge(1, 3, 3),
	graph.NewEdge(1, 4, 7),
	graph.NewEdge(2, 3, 3),
	graph.NewEdge(2, 6, 9),
	graph.NewEdge(3, 4, 2),
	graph.NewEdge(3, 6, 6),
	graph.NewEdge(4, 6, 5),
	graph.NewEdge(4, 5, 8),
	graph.NewEdge(4, 7, 7),
	graph.NewEdge(5, 7, 3),
	graph.NewEdge(5, 8, 4),
	graph.NewEdge(6, 7, 2),
}

// labeledCase is a letter-labeled fixture with its expected MST weight.
type labeledCase struct {
	name     string
	edges    []graph.LabeledEdge
	vertices int
	weight   graph.Weight
}

var labeledCases = []labeledCase{
	{
		name: "graphA", vertices: 8, weight: 13,
		edges: []graph.LabeledEdge{
			{'A', 'B', 2}, {'A', 'F', 3}, {'F', 'D', 4}, {'D', 'G', 2}, {'F', 'G', 1},
			{'D', 'E', 2}, {'G', 'H', 1}, {'B', 'G', 3}, {'B', 'E', 4}, {'B', 'C', 5},
			{'E', 'C', 2}, {'C', 'H', 4}, {'E', 'H', 3},
		},
	},
	{
		name: "graphB", vertices: 7, weight: 14,
		edges: []graph.LabeledEdge{
			{'A', 'B', 2}, {'A', 'D', 6}, {'A', 'C', 4}, {'B', 'C', 2}, {'B', 'E', 6},
			{'C', 'D', 1}, {'C', 'E', 3}, {'D', 'E', 2}, {'D', 'F', 3}, {'E', 'G', 5},
			{'F', 'G', 4},
		},
	},
	{
		name: "graphC", vertices: 8, weight: 17,
		edges: []graph.LabeledEdge{
			{'A', 'B', 1}, {'A', 'F', 2}, {'A', 'D', 5}, {'B', 'E', 2}, {'F', 'G', 4},
			{'D', 'G', 2}, {'D', 'E', 1}, {'G', 'E', 2}, {'G', 'H', 5}, {'E', 'C', 4},
		},
	},
	{
		name: "graphD", vertices: 8, weight: 11,
		edges: []graph.LabeledEdge{
			{'a', 'b', 1}, {'a', 'd', 2}, {'b', 'e', 1}, {'c', 'd', 4}, {'b', 'c', 1},
			{'d', 'e', 2}, {'d', 'f', 2}, {'g', 'h', 1}, {'f', 'g', 4}, {'f', 'h', 5},
			{'e', 'h', 3}, {'e', 'f', 5},
		},
	},
}
