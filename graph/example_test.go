package graph_test

import (
	"fmt"

	"github.com/katalvlaran/spantree/graph"
)

// ExampleGraph_MinSpanTreeKruskal prints the tree of a 6-vertex graph.
// The MST is {0–2, 1–2, 1–3, 3–4, 4–5} with total weight 14.
func ExampleGraph_MinSpanTreeKruskal() {
	g := graph.FromEdges([]graph.Edge{
		graph.NewEdge(0, 1, 4),
		graph.NewEdge(0, 2, 3),
		graph.NewEdge(1, 2, 1),
		graph.NewEdge(1, 3, 2),
		graph.NewEdge(2, 3, 4),
		graph.NewEdge(3, 4, 2),
		graph.NewEdge(4, 5, 6),
	})

	tree := g.MinSpanTreeKruskal()
	fmt.Println(tree)
	fmt.Println("total:", tree.TotalWeight())
	// Output:
	// Graph(start - weight - end) {
	//     0 - 2: (3),
	//     1 - 2: (1),
	//     1 - 3: (2),
	//     3 - 4: (2),
	//     4 - 5: (6),
	// }
	// total: 14
}

// ExampleGraph_MinSpanTreePrim builds a lettered graph and grows the tree
// from vertex A.
func ExampleGraph_MinSpanTreePrim() {
	g, err := graph.FromLabeledEdges([]graph.LabeledEdge{
		{Start: 'A', End: 'B', Weight: 1},
		{Start: 'B', End: 'C', Weight: 2},
		{Start: 'A', End: 'C', Weight: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	tree := g.MinSpanTreePrim()
	fmt.Println(tree.LabeledString())
	fmt.Println("total:", tree.TotalWeight())
	// Output:
	// Graph(start - weight - end) {
	//     A - B: (1),
	//     B - C: (2),
	// }
	// total: 3
}

// ExampleFromLabeledEdges_invalid shows the error for a non-letter label.
func ExampleFromLabeledEdges_invalid() {
	_, err := graph.FromLabeledEdges([]graph.LabeledEdge{{Start: 'A', End: '7', Weight: 1}})
	fmt.Println(err)
	// Output: graph: labeled edge 0 end: graph: invalid vertex label: '7'
}

// ExampleGraph_MinSpanTreePrim_disconnected shows that Prim only spans vertex 0's component.
func ExampleGraph_MinSpanTreePrim_disconnected() {
	g := graph.New(4)
	g.AddEdge(graph.NewEdge(0, 1, 2))
	g.AddEdge(graph.NewEdge(2, 3, 1))

	fmt.Println("prim:", g.MinSpanTreePrim().ListOfEdges())
	fmt.Println("kruskal:", g.MinSpanTreeKruskal().ListOfEdges())
	// Output:
	// prim: [0 - 1: (2)]
	// kruskal: [0 - 1: (2) 2 - 3: (1)]
}
