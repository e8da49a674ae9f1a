package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/wayfarer/builder"
	"github.com/katalvlaran/wayfarer/dfs"
)

// ExampleSearch walks a 2×3 grid; the down edge of each cell is listed last
// and therefore tried first.
func ExampleSearch() {
	g, _ := builder.BuildGraph(nil, nil, builder.Grid(2, 3))

	res, err := dfs.Search(g, "0_0", "0_2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path)
	// Output:
	// 0_0 -> 1_0 -> 1_1 -> 1_2 -> 0_2
}
