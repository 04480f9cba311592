// Package builder provides deterministic, functional-options style generators
// for weighted undirected edge lists. They feed the graph package's tests,
// benchmarks and the spantree CLI with reproducible inputs.
//
// Topologies (Constructor factories):
//
//   - Path(n)             – 0–1–…–(n-1), n ≥ 2.
//   - Cycle(n)            – Path(n) closed by (n-1)–0, n ≥ 3.
//   - Star(n)             – hub 0 joined to leaves 1..n-1, n ≥ 2.
//   - Wheel(n)            – cycle over 1..n-1 plus hub 0 joined to every rim vertex, n ≥ 4.
//   - Complete(n)         – every unordered pair {i,j}, i<j, n ≥ 2.
//   - Grid(rows, cols)    – 4-neighbourhood lattice, vertex r*cols+c, rows*cols ≥ 2.
//   - RandomConnected(n, m) – random spanning chain plus m-(n-1) distinct extra
//     pairs; requires an RNG (WithSeed / WithRand).
//
// Options:
//
//   - WithSeed(seed)  – seeded *rand.Rand; same seed ⇒ same edges and weights.
//   - WithRand(r)     – explicit RNG; panics on nil.
//   - WithWeightFn(f) – per-edge weight policy; panics on nil.
//
// Weights are drawn from the WeightFn once per emitted edge, in emission
// order, so a fixed seed reproduces the exact same list. Without a WeightFn
// every edge weighs DefaultEdgeWeight.
//
// Errors are the sentinels in errors.go wrapped as "<Method>: ...: %w"; check
// them with errors.Is. Option constructors panic on meaningless values;
// topology constructors never panic.
package builder
