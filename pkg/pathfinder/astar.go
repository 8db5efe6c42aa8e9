package pathfinder

import (
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/graph"
)

// runAStar is standard best-first search keyed on f = g + h, with ties
// among equal keys broken FIFO by the open set.
func runAStar(g *graph.Graph, start, end *graph.Vertex, metric geometry.Metric) *Result {
	open := newOpenSet()
	gScore := map[string]float64{start.ID(): 0}
	parent := map[string]*graph.Vertex{}
	visited := []*graph.Vertex{}
	seen := map[string]bool{}

	open.push(start, heuristic(metric, start, end))

	for open.len() > 0 {
		current := open.pop()
		if !seen[current.ID()] {
			seen[current.ID()] = true
			visited = append(visited, current)
		}
		if current.ID() == end.ID() {
			return &Result{Parent: parent, Visited: visited, Reached: true}
		}

		for _, d := range geometry.Directions {
			for _, w := range g.Neighbours(current, d) {
				tentative := gScore[current.ID()] + cost(metric, current, w)
				existing, exists := gScore[w.ID()]
				if !exists || tentative < existing {
					gScore[w.ID()] = tentative
					parent[w.ID()] = current
					open.push(w, tentative+heuristic(metric, w, end))
				}
			}
		}
	}

	return &Result{Parent: parent, Visited: visited, Reached: false}
}
