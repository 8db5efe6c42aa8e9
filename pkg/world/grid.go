package world

import (
	"fmt"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
)

// GridElement is a cell addressed by logical (column, row) index. Column
// runs along x, row along y — the corrected orientation from spec.md
// §9, not the swapped one found in one revision of the source.
type GridElement struct {
	Column, Row int
	cell        cellstate.Cell
}

func (g *GridElement) ID() string            { return fmt.Sprintf("g:%d:%d", g.Column, g.Row) }
func (g *GridElement) Cell() cellstate.Cell  { return g.cell }
func (g *GridElement) Safe() bool            { return g.cell.Safe() }
func (g *GridElement) Unsafe() bool          { return g.cell.Unsafe() }
func (g *GridElement) Mixed() bool           { return g.cell.Mixed() }

// Grid is a uniform decomposition: every cell has the same size s,
// indexed by (column, row) with column in [0, Columns) and row in
// [0, Rows). Trailing pixels beyond Columns*s / Rows*s are discarded.
type Grid struct {
	CellSize      int
	Columns, Rows int
	elements      [][]*GridElement // [column][row]
}

// NewGrid builds a Grid over m at the given cell size.
func NewGrid(m *cellstate.Matrix, cellSize int) (*Grid, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("world: cell_size must be >= 1, got %d", cellSize)
	}
	columns := m.Width / cellSize
	rows := m.Height / cellSize
	if columns == 0 || rows == 0 {
		return nil, ErrMalformedRaster
	}

	elements := make([][]*GridElement, columns)
	for i := 0; i < columns; i++ {
		elements[i] = make([]*GridElement, rows)
		for j := 0; j < rows; j++ {
			pos := geometry.Vector2D{X: i * cellSize, Y: j * cellSize}
			elements[i][j] = &GridElement{
				Column: i,
				Row:    j,
				cell:   cellstate.NewCell(m, pos, cellSize, cellSize),
			}
		}
	}

	return &Grid{CellSize: cellSize, Columns: columns, Rows: rows, elements: elements}, nil
}

// Elements returns every GridElement of the grid, column-major then
// row-major, matching the construction order.
func (g *Grid) Elements() []Element {
	out := make([]Element, 0, g.Columns*g.Rows)
	for i := 0; i < g.Columns; i++ {
		for j := 0; j < g.Rows; j++ {
			out = append(out, g.elements[i][j])
		}
	}
	return out
}

// Get resolves a pixel point to its containing GridElement.
func (g *Grid) Get(point geometry.Vector2D) (Element, bool) {
	if point.X < 0 || point.Y < 0 {
		return nil, false
	}
	i := point.X / g.CellSize
	j := point.Y / g.CellSize
	if i < 0 || i >= g.Columns || j < 0 || j >= g.Rows {
		return nil, false
	}
	return g.elements[i][j], true
}

// Neighbours returns zero or one element in the given direction.
func (g *Grid) Neighbours(element Element, direction geometry.Direction) []Element {
	ge, ok := element.(*GridElement)
	if !ok {
		return nil
	}
	i, j := ge.Column, ge.Row

	var ni, nj int
	var inBounds bool
	switch direction {
	case geometry.N:
		ni, nj, inBounds = i, j-1, j > 0
	case geometry.E:
		ni, nj, inBounds = i+1, j, i < g.Columns-1
	case geometry.S:
		ni, nj, inBounds = i, j+1, j < g.Rows-1
	case geometry.W:
		ni, nj, inBounds = i-1, j, i > 0
	case geometry.NW:
		ni, nj, inBounds = i-1, j-1, i > 0 && j > 0
	case geometry.NE:
		ni, nj, inBounds = i+1, j-1, i < g.Columns-1 && j > 0
	case geometry.SW:
		ni, nj, inBounds = i-1, j+1, i > 0 && j < g.Rows-1
	case geometry.SE:
		ni, nj, inBounds = i+1, j+1, i < g.Columns-1 && j < g.Rows-1
	}
	if !inBounds {
		return nil
	}
	return []Element{g.elements[ni][nj]}
}
