package pathfinder

import (
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/graph"
)

// runJPS uses the same open-set/parent machinery as A* but relaxes
// against jump points rather than immediate neighbors. Specialized to
// uniform grids by the orchestrator — a grid's Neighbours never returns
// more than one vertex per direction, which the single-successor
// assumptions below (neighbor, prune, jump) rely on.
func runJPS(g *graph.Graph, start, end *graph.Vertex, metric geometry.Metric) *Result {
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

		for _, w := range successors(g, current, parent[current.ID()], end) {
			tentative := gScore[current.ID()] + cost(metric, current, w)
			existing, exists := gScore[w.ID()]
			if !exists || tentative < existing {
				gScore[w.ID()] = tentative
				parent[w.ID()] = current
				open.push(w, tentative+heuristic(metric, w, end))
			}
		}
	}

	return &Result{Parent: parent, Visited: visited, Reached: false}
}

func neighbor(g *graph.Graph, v *graph.Vertex, d geometry.Direction) *graph.Vertex {
	if v == nil {
		return nil
	}
	ns := g.Neighbours(v, d)
	if len(ns) == 0 {
		return nil
	}
	return ns[0]
}

func safe(v *graph.Vertex) bool {
	return v != nil && !v.Obstacle
}

// directionFromTo returns the compass direction from a's center to b's
// center; ok is false if a and b coincide.
func directionFromTo(a, b *graph.Vertex) (geometry.Direction, bool) {
	ac := a.Element.Cell().Center()
	bc := b.Element.Cell().Center()
	dx := sign(bc.X - ac.X)
	dy := sign(bc.Y - ac.Y)
	switch {
	case dx == 0 && dy == 0:
		return 0, false
	case dx == 0 && dy < 0:
		return geometry.N, true
	case dx == 0 && dy > 0:
		return geometry.S, true
	case dx > 0 && dy == 0:
		return geometry.E, true
	case dx < 0 && dy == 0:
		return geometry.W, true
	case dx < 0 && dy < 0:
		return geometry.NW, true
	case dx > 0 && dy < 0:
		return geometry.NE, true
	case dx < 0 && dy > 0:
		return geometry.SW, true
	default:
		return geometry.SE, true
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// prune returns the candidate neighbors of current worth jumping from,
// given the direction of travel from parent. A nil parent means current
// is the search root and every graph neighbor is a candidate.
func prune(g *graph.Graph, current, parent *graph.Vertex) []*graph.Vertex {
	if parent == nil {
		return g.AllNeighbours(current)
	}
	d, ok := directionFromTo(parent, current)
	if !ok {
		return g.AllNeighbours(current)
	}

	switch d.Type() {
	case geometry.Diagonal:
		v, h := d.Components()
		return pruneDiagonal(g, current, d, v, h)
	case geometry.Horizontal:
		return pruneStraight(g, current, d, geometry.N, geometry.S)
	default:
		return pruneStraight(g, current, d, geometry.W, geometry.E)
	}
}

// pruneDiagonal includes the two cardinal components when safe, plus
// the diagonal successor itself only when both components are safe —
// this is what prevents corner-cutting through a pair of obstacles.
func pruneDiagonal(g *graph.Graph, current *graph.Vertex, d, v, h geometry.Direction) []*graph.Vertex {
	nv := neighbor(g, current, v)
	nh := neighbor(g, current, h)

	var out []*graph.Vertex
	if safe(nv) {
		out = append(out, nv)
	}
	if safe(nh) {
		out = append(out, nh)
	}
	if safe(nv) && safe(nh) {
		if diag := neighbor(g, current, d); diag != nil {
			out = append(out, diag)
		}
	}
	return out
}

// pruneStraight implements the cardinal pruning rule for direction d,
// where side1/side2 are the two directions perpendicular to d (N/S for
// a horizontal d, W/E for a vertical d — the same function serves both
// axes, which is what keeps the two cases symmetric instead of
// accidentally reusing one axis's lookups for the other).
func pruneStraight(g *graph.Graph, current *graph.Vertex, d, side1, side2 geometry.Direction) []*graph.Vertex {
	forward := neighbor(g, current, d)
	s1 := neighbor(g, current, side1)
	s2 := neighbor(g, current, side2)

	var out []*graph.Vertex
	if safe(forward) {
		out = append(out, forward)
		if safe(s1) {
			if n := neighbor(g, s1, d); n != nil {
				out = append(out, n)
			}
		}
		if safe(s2) {
			if n := neighbor(g, s2, d); n != nil {
				out = append(out, n)
			}
		}
	}
	if safe(s1) {
		out = append(out, s1)
	}
	if safe(s2) {
		out = append(out, s2)
	}
	return out
}

// jump recurses from current (reached from parent) along
// direction(current, parent) until it finds a jump point: the goal, a
// cell with a forced neighbor, or a diagonal step whose cardinal scans
// find something. Returns nil if the ray runs into an obstacle or off
// the grid without finding one.
func jump(g *graph.Graph, current, parent, end *graph.Vertex) *graph.Vertex {
	if current == nil || current.Obstacle {
		return nil
	}
	if current.ID() == end.ID() {
		return current
	}

	d, ok := directionFromTo(parent, current)
	if !ok {
		return nil
	}

	if d.IsDiagonal() {
		v, h := d.Components()
		if jump(g, neighbor(g, current, v), current, end) != nil {
			return current
		}
		if jump(g, neighbor(g, current, h), current, end) != nil {
			return current
		}
	} else if hasForcedNeighbor(g, current, d) {
		return current
	}

	return jump(g, neighbor(g, current, d), current, end)
}

// hasForcedNeighbor reports whether current has a forced neighbor along
// d's perpendicular sides: a neighbor that exists, is safe, but whose
// own neighbor in opposite(d) is unsafe — meaning it could only be
// reached by a move through current, not by continuing straight.
func hasForcedNeighbor(g *graph.Graph, current *graph.Vertex, d geometry.Direction) bool {
	var side1, side2 geometry.Direction
	if d.IsHorizontal() {
		side1, side2 = geometry.N, geometry.S
	} else {
		side1, side2 = geometry.W, geometry.E
	}
	opposite := d.Opposite()

	for _, side := range [2]geometry.Direction{side1, side2} {
		n := neighbor(g, current, side)
		if !safe(n) {
			continue
		}
		predecessor := neighbor(g, n, opposite)
		if !safe(predecessor) {
			return true
		}
	}
	return false
}

// successors produces the jump points reachable from current, given the
// direction it was reached in from parent.
func successors(g *graph.Graph, current, parent, end *graph.Vertex) []*graph.Vertex {
	var out []*graph.Vertex
	for _, n := range prune(g, current, parent) {
		if n == nil {
			continue
		}
		if jp := jump(g, n, current, end); jp != nil {
			out = append(out, jp)
		}
	}
	return out
}
