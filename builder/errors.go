// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Grid: rows=0 < min=1: ...").

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooFewEdges indicates an edge budget that cannot keep the graph connected
// (RandomConnected with m < n-1).
var ErrTooFewEdges = errors.New("builder: too few edges for a connected graph")

// ErrTooManyEdges indicates an edge budget above n(n-1)/2, the size of a
// simple complete graph.
var ErrTooManyEdges = errors.New("builder: too many edges for a simple graph")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilConstructor indicates that Edges or Build received a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")
