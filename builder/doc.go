// Package builder assembles small deterministic graphs for tests, examples
// and benchmarks of the search packages.
//
// A Constructor mutates a *core.Graph under a resolved builderConfig;
// BuildGraph allocates the graph, applies every constructor in order and
// seals the result:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithDirected(true)},
//	    []builder.BuilderOption{builder.WithIDFn(builder.SymbolIDFn)},
//	    builder.GameTree(2, []float64{3, 5, 2, 9}),
//	)
//
// Constructors:
//
//	Path(n)                 v0—v1—…—v(n-1)
//	Cycle(n)                Path(n) plus v(n-1)—v0
//	Grid(rows, cols)        "r_c" lattice, right and down edges
//	GameTree(b, leaves)     complete b-ary Minimax tree, leaves terminal
//
// Determinism:
//
//	IDs come from the configured IDFn; edges are emitted in a fixed order;
//	weights come from a WeightFn of the edge index, never from an RNG.
package builder
