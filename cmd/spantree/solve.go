package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/internal/edgefile"
)

const methodBoth = "both"

// ErrDisagree is returned when Prim and Kruskal produce trees of different
// total weight for the same input.
var ErrDisagree = errors.New("spantree: prim and kruskal disagree")

type solveCmd struct {
	File   string `arg:"" type:"existingfile" help:"TOML edge file."`
	Method string `help:"Algorithm to run." enum:"prim,kruskal,both" default:"both"`
	Labels bool   `help:"Render vertices as letters A-Z."`
}

func (c *solveCmd) Run(rt *runtime) error {
	g, err := loadGraph(rt.log, c.File)
	if err != nil {
		return err
	}

	return solve(rt, g, methodsFor(c.Method), c.Labels)
}

func methodsFor(name string) []graph.Method {
	if name == methodBoth {
		return graph.Methods()
	}

	return []graph.Method{graph.Method(name)}
}

func loadGraph(log *zap.Logger, path string) (*graph.Graph, error) {
	f, err := edgefile.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := f.Graph()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("graph loaded",
		zap.String("file", path),
		zap.String("name", f.Name),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return g, nil
}

// solve runs each method on g and prints the tree and its total weight.
// With more than one method the totals must agree.
func solve(rt *runtime, g *graph.Graph, methods []graph.Method, labels bool) error {
	totals := make(map[graph.Method]graph.Weight, len(methods))
	for _, m := range methods {
		tree, err := graph.SpanningTree(g, m)
		if err != nil {
			return err
		}
		totals[m] = tree.TotalWeight()
		rt.log.Info("spanning tree computed",
			zap.String("method", string(m)),
			zap.Int("vertices", tree.VertexCount()),
			zap.Int("edges", tree.EdgeCount()),
			zap.Uint64("total_weight", totals[m]),
		)

		rendered := tree.String()
		if labels {
			rendered = tree.LabeledString()
		}
		if _, err = fmt.Fprintf(rt.out, "%s\n%s\ntotal weight: %d\n", m, rendered, totals[m]); err != nil {
			return err
		}
	}

	if len(methods) < 2 {
		return nil
	}
	first := totals[methods[0]]
	for _, m := range methods[1:] {
		if totals[m] != first {
			return fmt.Errorf("%w: %s=%d %s=%d", ErrDisagree, methods[0], first, m, totals[m])
		}
	}
	_, err := fmt.Fprintln(rt.out, "totals agree")

	return err
}
