package cellstate

import (
	"fmt"

	"github.com/chazu/wayfarer/pkg/geometry"
)

// Cell is an axis-aligned rectangle with a classification. Width and
// height are always >= 1.
type Cell struct {
	Position geometry.Vector2D
	Width    int
	Height   int
	State    State
}

// NewCell builds a Cell and classifies it against the given matrix.
func NewCell(m *Matrix, position geometry.Vector2D, width, height int) Cell {
	return Cell{
		Position: position,
		Width:    width,
		Height:   height,
		State:    Of(m, position, width, height),
	}
}

// Contains reports whether point lies within the cell, closed on both
// bounds (matching spec.md's closed-interval contains semantics).
func (c Cell) Contains(point geometry.Vector2D) bool {
	return point.X >= c.Position.X && point.X <= c.Position.X+c.Width-1 &&
		point.Y >= c.Position.Y && point.Y <= c.Position.Y+c.Height-1
}

// Center returns the integer midpoint of the cell, floor-divided.
func (c Cell) Center() geometry.Vector2D {
	return geometry.Vector2D{
		X: c.Position.X + c.Width/2,
		Y: c.Position.Y + c.Height/2,
	}
}

// Safe reports whether the cell's state is SAFE.
func (c Cell) Safe() bool { return c.State == Safe }

// Unsafe reports whether the cell's state is UNSAFE.
func (c Cell) Unsafe() bool { return c.State == Unsafe }

// Mixed reports whether the cell's state is MIXED.
func (c Cell) Mixed() bool { return c.State == Mixed }

// CellKey returns a stable identity for a Cell by its rectangle, used
// by the renderer to test set membership (visited/path) without
// needing the originating WorldElement.
func CellKey(c Cell) string {
	return fmt.Sprintf("%d:%d:%d:%d", c.Position.X, c.Position.Y, c.Width, c.Height)
}
