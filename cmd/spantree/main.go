// Command spantree computes minimum spanning trees of weighted edge files
// with Prim's and Kruskal's algorithms and generates test inputs.
//
//	spantree solve graph.toml --method both
//	spantree generate random --n 50 --edges 200 --seed 7 --out g.toml
//	spantree compare graph.toml reference.toml
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"info" env:"SPANTREE_LOG_LEVEL"`
	LogJSON  bool   `help:"Emit JSON logs instead of console text." env:"SPANTREE_LOG_JSON"`
}

type cli struct {
	Globals

	Solve    solveCmd    `cmd:"" help:"Compute the minimum spanning tree of an edge file."`
	Generate generateCmd `cmd:"" help:"Write a generated edge file."`
	Compare  compareCmd  `cmd:"" help:"Check both algorithms against a reference tree file."`
}

func main() {
	var params cli
	ctx := kong.Parse(&params,
		kong.Name("spantree"),
		kong.Description("Minimum spanning trees with Prim's and Kruskal's algorithms."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(params.LogLevel, params.LogJSON)
	ctx.FatalIfErrorf(err)
	defer func() { _ = logger.Sync() }()

	err = ctx.Run(&runtime{log: logger, out: os.Stdout})
	if err != nil {
		logger.Error("command failed", zap.String("command", ctx.Command()), zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
