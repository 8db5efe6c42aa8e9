// Package world decomposes a decoded raster into cells and answers
// point-to-cell and cell-to-neighbor queries, either via a uniform Grid
// or a region Quadtree.
package world

import (
	"errors"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
)

// ErrMalformedRaster is returned when the raster is too small to hold
// at least one cell at the requested resolution.
var ErrMalformedRaster = errors.New("world: raster too small for cell size")

// Element is a handle onto a cell: a GridElement (logical column/row) or
// a QNode (quadtree leaf). Identity is derived from ID, which callers
// use as a map key since Go has no custom-hash support for arbitrary
// interface values.
type Element interface {
	ID() string
	Cell() cellstate.Cell
	Safe() bool
	Unsafe() bool
	Mixed() bool
}

// World is the shared contract between Grid and Quadtree: decompose a
// raster into elements, resolve a point to its containing element, and
// enumerate neighbors of an element in a given direction. The pathfinder
// never consults World directly — only the Graph built from it — except
// JPS, which the orchestrator restricts to Grid worlds only.
type World interface {
	Elements() []Element
	Get(point geometry.Vector2D) (Element, bool)
	Neighbours(element Element, direction geometry.Direction) []Element
}
