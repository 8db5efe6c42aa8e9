// Package tracer reconstructs a path from a pathfinder's predecessor map
// and optionally smooths it into a boundary-following trajectory.
package tracer

import (
	"errors"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/graph"
	"github.com/chazu/wayfarer/pkg/pathfinder"
)

// Trajectory selects whether waypoints are left at cell centers (Sharp)
// or smoothed to cell-boundary crossings (Smooth).
type Trajectory int

const (
	Sharp Trajectory = iota
	Smooth
)

// ErrNoPath is returned when the search never reached the end vertex.
var ErrNoPath = errors.New("tracer: no path to end")

// Result is the tracer's output, consumed by the render collaborator.
type Result struct {
	Visited []cellstate.Cell
	Path    []cellstate.Cell
	Points  []geometry.Vector2D
}

// Backtrace walks search.Parent from end back to start, builds the
// ordered cell path and pixel waypoints, and applies smoothing when
// requested.
func Backtrace(search *pathfinder.Result, start, end *graph.Vertex, startPoint, endPoint geometry.Vector2D, trajectory Trajectory) (*Result, error) {
	if start.ID() != end.ID() {
		if _, ok := search.Parent[end.ID()]; !ok {
			return nil, ErrNoPath
		}
	}

	// path_cells, goal-first, mirroring spec.md §4.8's backtrace order.
	var chain []*graph.Vertex
	current := end
	chain = append(chain, current)
	for {
		prev, ok := search.Parent[current.ID()]
		if !ok {
			break
		}
		chain = append(chain, prev)
		current = prev
	}

	pathCellsGoalFirst := make([]cellstate.Cell, len(chain))
	for i, v := range chain {
		pathCellsGoalFirst[i] = v.Element.Cell()
	}

	points := make([]geometry.Vector2D, 0, len(chain))
	points = append(points, endPoint)
	for i := 1; i < len(chain)-1; i++ {
		points = append(points, chain[i].Element.Cell().Center())
	}
	points = append(points, startPoint)

	if trajectory == Smooth {
		points = smoothPoints(points, pathCellsGoalFirst)
	}

	visited := make([]cellstate.Cell, len(search.Visited))
	for i, v := range search.Visited {
		visited[i] = v.Element.Cell()
	}

	// Present the path start->goal, the natural order for rendering.
	path := make([]cellstate.Cell, len(pathCellsGoalFirst))
	for i, c := range pathCellsGoalFirst {
		path[len(path)-1-i] = c
	}

	return &Result{Visited: visited, Path: path, Points: points}, nil
}

// smoothPoints replaces each intermediate waypoint with the first
// boundary crossing (checked N, E, S, W) the segment to the next
// waypoint makes with its associated cell, per spec.md §4.8.
func smoothPoints(points []geometry.Vector2D, cellsGoalFirst []cellstate.Cell) []geometry.Vector2D {
	if len(points) < 2 {
		return points
	}

	var crossings []geometry.Vector2D
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		cell := cellsGoalFirst[i]
		if ip, ok := firstBoundaryIntersection(cell, a, b); ok {
			crossings = append(crossings, ip)
		}
	}

	out := make([]geometry.Vector2D, 0, len(crossings)+2)
	out = append(out, points[0])
	out = append(out, crossings...)
	out = append(out, points[len(points)-1])
	return out
}

// firstBoundaryIntersection returns the first cell-boundary segment (in
// N, E, S, W order) that the line from a to b crosses.
func firstBoundaryIntersection(cell cellstate.Cell, a, b geometry.Vector2D) (geometry.Vector2D, bool) {
	x, y := cell.Position.X, cell.Position.Y
	right := x + cell.Width - 1
	bottom := y + cell.Height - 1

	nw := geometry.Vector2D{X: x, Y: y}
	ne := geometry.Vector2D{X: right, Y: y}
	se := geometry.Vector2D{X: right, Y: bottom}
	sw := geometry.Vector2D{X: x, Y: bottom}

	edges := [4][2]geometry.Vector2D{
		{nw, ne}, // N
		{ne, se}, // E
		{se, sw}, // S
		{sw, nw}, // W
	}

	for _, edge := range edges {
		if ip, ok := geometry.SegmentIntersect(a, b, edge[0], edge[1]); ok {
			return ip, true
		}
	}
	return geometry.Vector2D{}, false
}
