package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/spantree/graph"
)

// ErrReferenceMismatch is returned when a computed tree's total weight differs
// from the reference tree's.
var ErrReferenceMismatch = errors.New("spantree: tree does not match reference")

type compareCmd struct {
	File      string `arg:"" type:"existingfile" help:"TOML edge file to solve."`
	Reference string `arg:"" type:"existingfile" help:"TOML edge file holding the expected tree."`
}

func (c *compareCmd) Run(rt *runtime) error {
	g, err := loadGraph(rt.log, c.File)
	if err != nil {
		return err
	}
	ref, err := loadGraph(rt.log, c.Reference)
	if err != nil {
		return err
	}

	return compare(rt, g, ref)
}

// compare checks every method's tree against ref. Total weight decides the
// outcome; structural equality is only reported, since equal-weight ties can
// pick different edges.
func compare(rt *runtime, g, ref *graph.Graph) error {
	want := ref.TotalWeight()
	var mismatched []graph.Method
	for _, m := range graph.Methods() {
		tree, err := graph.SpanningTree(g, m)
		if err != nil {
			return err
		}
		got := tree.TotalWeight()
		same := tree.Equal(ref)

		status := "ok"
		if got != want {
			status = "MISMATCH"
			mismatched = append(mismatched, m)
		}
		rt.log.Info("compared with reference",
			zap.String("method", string(m)),
			zap.Uint64("total_weight", got),
			zap.Uint64("reference_weight", want),
			zap.Bool("identical", same),
		)
		if _, err = fmt.Fprintf(rt.out, "%s: %s total=%d reference=%d identical=%t\n",
			m, status, got, want, same); err != nil {
			return err
		}
	}

	if len(mismatched) > 0 {
		return fmt.Errorf("%w: %v", ErrReferenceMismatch, mismatched)
	}

	return nil
}
