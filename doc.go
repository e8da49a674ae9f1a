// Package wayfarer is a small toolkit for searching weighted road networks
// and playing adversarial travel games over them.
//
// What is in here?
//
//	core/     - thread-safe Graph with vertex annotations (heuristic, terminal utility)
//	builder/  - deterministic topologies: Path, Cycle, Grid, GameTree
//	bfs/      - breadth-first search (fewest hops)
//	dfs/      - depth-first search (iterative, deepest-first)
//	ucs/      - uniform-cost search and greedy multi-goal tours
//	astar/    - A* with stored or caller-supplied heuristics
//	minimax/  - iterative Minimax with branch-local cycle handling
//	search/   - one entry point over bfs, dfs, ucs and astar
//	geo/      - coordinates, great-circle distances and an R-tree city index
//	dataset/  - YAML/HCL road and game tables, plus the embedded Ethiopian data
//	render/   - Graphviz DOT output with a highlighted route
//
// The wayfarer command (cmd/wayfarer) wires these together.
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
// BFS from A to D returns A→B→D: B is listed before C in A's neighbors.
//
//	go install github.com/katalvlaran/wayfarer/cmd/wayfarer@latest
package wayfarer
