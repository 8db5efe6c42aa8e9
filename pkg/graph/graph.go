// Package graph materializes a direction-indexed navigation graph over a
// world's elements.
package graph

import (
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/world"
)

// Vertex wraps a WorldElement with its obstacle bit. Identity and
// hashing are derived from the underlying element's ID.
type Vertex struct {
	Element  world.Element
	Obstacle bool
}

// ID returns the identity of the underlying element.
func (v *Vertex) ID() string { return v.Element.ID() }

// Graph is the adjacency built once per request: vertex -> direction ->
// ordered successor vertices. Read-only after Build returns.
type Graph struct {
	vertices map[string]*Vertex
	edges    map[string]map[geometry.Direction][]*Vertex
}

// Build materializes a Graph over every element of w. When onlySafe is
// true, non-SAFE neighbors are dropped from each direction's successor
// list (used by A*, which needs a pre-pruned graph); JPS passes false
// since it must see obstacle neighbors to detect forced moves.
func Build(w world.World, onlySafe bool) *Graph {
	elements := w.Elements()
	g := &Graph{
		vertices: make(map[string]*Vertex, len(elements)),
		edges:    make(map[string]map[geometry.Direction][]*Vertex, len(elements)),
	}

	for _, e := range elements {
		g.vertices[e.ID()] = &Vertex{Element: e, Obstacle: !e.Safe()}
	}

	for _, e := range elements {
		v := g.vertices[e.ID()]
		dirs := make(map[geometry.Direction][]*Vertex, len(geometry.Directions))
		for _, d := range geometry.Directions {
			neighbours := w.Neighbours(e, d)
			var successors []*Vertex
			for _, n := range neighbours {
				nv := g.vertices[n.ID()]
				if onlySafe && nv.Obstacle {
					continue
				}
				successors = append(successors, nv)
			}
			dirs[d] = successors
		}
		g.edges[v.ID()] = dirs
	}

	return g
}

// Vertex returns the vertex wrapping the given element, if present.
func (g *Graph) Vertex(e world.Element) (*Vertex, bool) {
	v, ok := g.vertices[e.ID()]
	return v, ok
}

// Neighbours returns the successors of v in direction d, in insertion
// order (which mirrors the world's neighbor-enumeration order).
func (g *Graph) Neighbours(v *Vertex, d geometry.Direction) []*Vertex {
	return g.edges[v.ID()][d]
}

// AllNeighbours returns every successor of v across all eight
// directions, in N,E,S,W,NW,NE,SW,SE order — the "natural initial
// expansion" JPS uses when a node has no parent yet.
func (g *Graph) AllNeighbours(v *Vertex) []*Vertex {
	var out []*Vertex
	for _, d := range geometry.Directions {
		out = append(out, g.edges[v.ID()][d]...)
	}
	return out
}
