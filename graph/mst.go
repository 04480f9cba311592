package graph

import "fmt"

// SpanningTree runs the algorithm named by method on g.
//
//   - MethodPrim    → g.MinSpanTreePrim()
//   - MethodKruskal → g.MinSpanTreeKruskal()
//   - anything else → ErrUnknownMethod
func SpanningTree(g *Graph, method Method) (*Graph, error) {
	switch method {
	case MethodPrim:
		return g.MinSpanTreePrim(), nil
	case MethodKruskal:
		return g.MinSpanTreeKruskal(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// Methods lists the supported algorithms in a stable order.
func Methods() []Method {
	return []Method{MethodPrim, MethodKruskal}
}
