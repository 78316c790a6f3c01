package search

import (
	"github.com/matzehuels/hillclimb/pkg/navgraph"
	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// BreadthFirst returns the shortest path from source to goal by plain
// breadth-first search. It explores level by level with no heuristic, so it
// is slower than [AStar] but trivially correct; it serves as the reference
// result for verification. Out-of-range cells yield Found == false.
func BreadthFirst(g navgraph.Graph, source, goal terrain.CellID) Result {
	n := g.Len()
	res := Result{Source: source, Sources: 1}
	if source < 0 || int(source) >= n || goal < 0 || int(goal) >= n {
		return res
	}

	dist := make([]int, n)
	for i := range dist {
		dist[i] = -1
	}
	prev := make([]terrain.CellID, n)
	dist[source] = 0

	queue := []terrain.CellID{source}
	var nbrs []terrain.CellID
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		res.Expanded++
		if u == goal {
			res.Found = true
			res.Cost = dist[u]
			res.Path = tracePath(prev, source, goal)
			return res
		}
		nbrs = g.Neighbors(u, nbrs[:0])
		for _, v := range nbrs {
			if dist[v] >= 0 {
				continue
			}
			dist[v] = dist[u] + 1
			prev[v] = u
			queue = append(queue, v)
		}
	}
	return Result{Source: source, Expanded: res.Expanded, Sources: 1}
}
