package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/graph"
	"github.com/katalvlaran/spantree/internal/edgefile"
)

// ErrWeightRange is returned when --min-weight exceeds --max-weight.
var ErrWeightRange = errors.New("spantree: min weight exceeds max weight")

type generateCmd struct {
	Kind      string       `arg:"" enum:"path,cycle,star,wheel,complete,grid,random" help:"Topology: path, cycle, star, wheel, complete, grid or random."`
	N         int          `help:"Vertex count (all kinds except grid)." default:"10"`
	Rows      int          `help:"Grid rows." default:"3"`
	Cols      int          `help:"Grid columns." default:"3"`
	Edges     int          `help:"Edge count for random graphs; 0 means 2*n capped at a complete graph."`
	Seed      int64        `help:"Random seed." default:"1"`
	MinWeight graph.Weight `help:"Smallest edge weight." default:"1"`
	MaxWeight graph.Weight `help:"Largest edge weight." default:"100"`
	Out       string       `help:"Output file; stdout when empty." type:"path"`
}

func (c *generateCmd) Run(rt *runtime) error {
	if c.Out == "" {
		return c.generate(rt, rt.out)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err = c.generate(rt, f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (c *generateCmd) generate(rt *runtime, w io.Writer) error {
	if c.MinWeight > c.MaxWeight {
		return fmt.Errorf("%w: %d > %d", ErrWeightRange, c.MinWeight, c.MaxWeight)
	}
	ctor, err := c.constructor()
	if err != nil {
		return err
	}

	g, err := builder.Build(ctor,
		builder.WithSeed(c.Seed),
		builder.WithWeightFn(builder.UniformWeightFn(c.MinWeight, c.MaxWeight)),
	)
	if err != nil {
		return err
	}
	f, err := edgefile.FromGraph(c.name(), g)
	if err != nil {
		return err
	}
	rt.log.Info("graph generated",
		zap.String("kind", c.Kind),
		zap.Int64("seed", c.Seed),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return edgefile.Encode(w, f)
}

func (c *generateCmd) constructor() (builder.Constructor, error) {
	switch c.Kind {
	case "path":
		return builder.Path(c.N), nil
	case "cycle":
		return builder.Cycle(c.N), nil
	case "star":
		return builder.Star(c.N), nil
	case "wheel":
		return builder.Wheel(c.N), nil
	case "complete":
		return builder.Complete(c.N), nil
	case "grid":
		return builder.Grid(c.Rows, c.Cols), nil
	case "random":
		return builder.RandomConnected(c.N, c.randomEdges()), nil
	}

	return nil, fmt.Errorf("spantree: unknown graph kind %q", c.Kind)
}

func (c *generateCmd) randomEdges() int {
	if c.Edges > 0 {
		return c.Edges
	}

	return min(2*c.N, c.N*(c.N-1)/2)
}

func (c *generateCmd) name() string {
	if c.Kind == "grid" {
		return fmt.Sprintf("grid-%dx%d", c.Rows, c.Cols)
	}

	return fmt.Sprintf("%s-%d", c.Kind, c.N)
}
