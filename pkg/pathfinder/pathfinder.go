// Package pathfinder implements shortest-path search (A* and Jump Point
// Search) over a navigation graph using a shared keyed priority queue.
package pathfinder

import (
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/graph"
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	AStarAlgorithm Algorithm = iota
	JPSAlgorithm
)

func (a Algorithm) String() string {
	if a == JPSAlgorithm {
		return "jps"
	}
	return "astar"
}

// Result is what the tracer needs to backtrace a path: the predecessor
// map and the set of vertices the search visited, in the order they
// were first popped from the open set.
type Result struct {
	Parent  map[string]*graph.Vertex
	Visited []*graph.Vertex
	Reached bool
}

// Run executes the chosen algorithm from start to end over g, using
// metric for both cost and heuristic — using the same metric for both
// is what keeps A*'s heuristic admissible.
func Run(algo Algorithm, g *graph.Graph, start, end *graph.Vertex, metric geometry.Metric) *Result {
	if algo == JPSAlgorithm {
		return runJPS(g, start, end, metric)
	}
	return runAStar(g, start, end, metric)
}

func cost(metric geometry.Metric, a, b *graph.Vertex) float64 {
	return metric.Calculate(a.Element.Cell().Center(), b.Element.Cell().Center())
}

func heuristic(metric geometry.Metric, a, end *graph.Vertex) float64 {
	return metric.Calculate(a.Element.Cell().Center(), end.Element.Cell().Center())
}
