package graph

import (
	"fmt"
	"strings"
)

// String renders the canonical edges sorted by (start, end):
//
//	Graph(start - weight - end) {
//	    0 - 2: (3),
//	    1 - 2: (1),
//	}
func (g *Graph) String() string {
	return g.render(func(e Edge) string { return e.String() })
}

// LabeledString is String with endpoints shown as letters (see VertexLabel).
func (g *Graph) LabeledString() string {
	return g.render(func(e Edge) string {
		return fmt.Sprintf("%s - %s: (%d)", VertexLabel(e.Start), VertexLabel(e.End), e.Weight)
	})
}

func (g *Graph) render(edge func(Edge) string) string {
	var b strings.Builder
	b.WriteString("Graph(start - weight - end) {\n")
	for _, e := range g.ListOfEdges() {
		b.WriteString("    ")
		b.WriteString(edge(e))
		b.WriteString(",\n")
	}
	b.WriteString("}")

	return b.String()
}
