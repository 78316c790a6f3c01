package search_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/hillclimb/pkg/navgraph"
	"github.com/matzehuels/hillclimb/pkg/search"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

func ExampleAStar() {
	grid, err := terrain.ParseString("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n")
	if err != nil {
		panic(err)
	}
	g := navgraph.Build(grid)

	res, err := search.AStar(context.Background(), g, grid.Start(), grid.Goal())
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Found, res.Cost)
	// Output: true 31
}

func ExampleMultiSource() {
	grid, err := terrain.ParseString("Sabqponm\nabcryxxl\naccszExk\nacctuvwj\nabdefghi\n")
	if err != nil {
		panic(err)
	}
	g := navgraph.Build(grid)

	res, err := search.MultiSource(context.Background(), g, grid.Lowest(), grid.Goal(), search.WithWorkers(2))
	if err != nil {
		panic(err)
	}
	row, col := grid.Coord(res.Source)
	fmt.Printf("cost %d from (%d,%d)\n", res.Cost, row, col)
	// Output: cost 29 from (4,0)
}
