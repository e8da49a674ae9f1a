package astar_test

import (
	"fmt"

	"github.com/katalvlaran/wayfarer/astar"
	"github.com/katalvlaran/wayfarer/core"
)

// ExampleSearch routes with straight-line estimates stored on the vertices.
func ExampleSearch() {
	g := core.NewGraph()
	_ = g.AddVertex("Addis Ababa", core.WithHeuristic(200))
	_ = g.AddVertex("Ambo", core.WithHeuristic(250))
	_ = g.AddVertex("Batu", core.WithHeuristic(90))
	_ = g.AddVertex("Hawassa", core.WithHeuristic(0))
	_, _ = g.AddEdge("Addis Ababa", "Ambo", 115)
	_, _ = g.AddEdge("Addis Ababa", "Batu", 160)
	_, _ = g.AddEdge("Batu", "Hawassa", 112)
	_, _ = g.AddEdge("Ambo", "Hawassa", 390)

	res, err := astar.Search(g, "Addis Ababa", "Hawassa")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost, res.Expanded)
	// Output:
	// Addis Ababa -> Batu -> Hawassa 272 3
}
