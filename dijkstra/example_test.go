package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/aoc/dijkstra"
	"github.com/katalvlaran/aoc/grid"
)

// ExampleCrucible finds the cheapest corner-to-corner route on a 2×2 board
// and prints the runs it took.
func ExampleCrucible() {
	g, _ := grid.New([][]uint{
		{1, 2},
		{3, 4},
	})
	res, err := dijkstra.Crucible(g, 1, 2, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("cost:", res.Cost)
	for _, m := range res.Moves {
		fmt.Printf("%v %s%d -> %v\n", m.From, m.Dir, m.Run, m.To)
	}

	// Output:
	// cost: 6
	// (0,0) E1 -> (0,1)
	// (0,1) S1 -> (1,1)
}
