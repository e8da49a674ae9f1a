package core_test

import (
	"fmt"

	"github.com/katalvlaran/wayfarer/core"
)

// ExampleGraph_Neighbors shows that undirected roads are visible from both ends
// and that Neighbors follows insertion order.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	_, _ = g.AddEdge("Addis Ababa", "Adama", 99)
	_, _ = g.AddEdge("Addis Ababa", "Ambo", 127)
	g.Seal()

	edges, _ := g.Neighbors("Addis Ababa")
	for _, e := range edges {
		fmt.Printf("%s -> %s (%v km)\n", e.From, e.To, e.Weight)
	}
	back, _ := g.Neighbors("Ambo")
	fmt.Printf("%s -> %s\n", back[0].From, back[0].To)
	// Output:
	// Addis Ababa -> Adama (99 km)
	// Addis Ababa -> Ambo (127 km)
	// Ambo -> Addis Ababa
}

// ExamplePathCost sums road weights along a route.
func ExamplePathCost() {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 3)

	cost, err := core.PathCost(g, core.Path{"A", "B", "C"})
	fmt.Println(cost, err)
	// Output: 5 <nil>
}
