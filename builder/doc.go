// Package builder generates deterministic route networks for tests,
// benchmarks and the `wayfinder generate` command.
//
// Every constructor emits into a core.Graph[string,float64] (aliased as
// Graph). Constructors compose: BuildGraph applies them in order, so a
// Grid followed by a Star with WithPrefixIDs("Hub") yields a street grid
// plus an unrelated hub network in one graph.
//
// Topologies:
//
//	Path(n)             0→1→…→(n-1)
//	Cycle(n)            Path plus (n-1)→0
//	Star(n)             idFn(0)→idFn(i) for i in 1..n-1
//	Complete(n)         every ordered pair, both directions
//	Grid(rows, cols)    "r,c" cells linked right and down
//	RandomSparse(n, p)  each ordered pair with probability p (needs WithSeed)
//
// Options:
//
//	WithSeed / WithRand       RNG for stochastic weights and RandomSparse
//	WithIDScheme / WithPrefixIDs / WithLetterIDs
//	WithWeightFn / WithConstantWeight / WithUniformWeight / WithMinutesWeight
//	WithBidirectional         mirror every arc with the same weight
//
// Same options, seed and constructor order produce identical graphs,
// including node insertion order.
package builder
