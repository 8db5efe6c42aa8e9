package world

import (
	"strconv"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
)

// Position identifies a child's slot within its parent.
type Position int

const (
	NW Position = iota
	NE
	SW
	SE
)

// QNode is a quadtree node: a cell, a parent back-reference, and up to
// four ordered children. A leaf has no children. Two QNodes are equal
// iff their locator codes are equal; the locator is the sequence of
// child positions from the root, which is what ID exposes as a map key.
type QNode struct {
	cell     cellstate.Cell
	parent   *QNode
	position Position
	children [4]*QNode // indexed by Position; nil children means leaf
	locator  string
}

func (n *QNode) ID() string           { return "q:" + n.locator }
func (n *QNode) Cell() cellstate.Cell { return n.cell }
func (n *QNode) Safe() bool           { return n.cell.Safe() }
func (n *QNode) Unsafe() bool         { return n.cell.Unsafe() }
func (n *QNode) Mixed() bool          { return n.cell.Mixed() }

// IsLeaf reports whether the node has no children.
func (n *QNode) IsLeaf() bool { return n.children[NW] == nil }

// Quadtree recursively subdivides MIXED regions of a raster down to a
// minimum leaf size.
type Quadtree struct {
	MinSize int
	root    *QNode
}

// NewQuadtree builds a Quadtree over m, subdividing MIXED nodes down to
// minSize.
func NewQuadtree(m *cellstate.Matrix, minSize int) (*Quadtree, error) {
	if minSize < 1 {
		minSize = 1
	}
	if m.Width < minSize || m.Height < minSize {
		return nil, ErrMalformedRaster
	}
	root := &QNode{
		cell: cellstate.NewCell(m, geometry.Vector2D{X: 0, Y: 0}, m.Width, m.Height),
	}
	root.divide(m, minSize)
	return &Quadtree{MinSize: minSize, root: root}, nil
}

// divide subdivides n if it is MIXED and each child would be at least
// minSize on both axes. Remainder pixels (odd width/height) are
// absorbed into the E/S children.
func (n *QNode) divide(m *cellstate.Matrix, minSize int) {
	if n.cell.State != cellstate.Mixed {
		return
	}
	w, h := n.cell.Width, n.cell.Height
	newW, newH := w/2, h/2
	if newW < minSize || newH < minSize {
		return
	}

	x, y := n.cell.Position.X, n.cell.Position.Y
	eastW := newW + w%2
	southH := newH + h%2

	nw := n.newChild(m, NW, geometry.Vector2D{X: x, Y: y}, newW, newH)
	ne := n.newChild(m, NE, geometry.Vector2D{X: x + newW, Y: y}, eastW, newH)
	sw := n.newChild(m, SW, geometry.Vector2D{X: x, Y: y + newH}, newW, southH)
	se := n.newChild(m, SE, geometry.Vector2D{X: x + newW, Y: y + newH}, eastW, southH)

	n.children = [4]*QNode{NW: nw, NE: ne, SW: sw, SE: se}

	nw.divide(m, minSize)
	ne.divide(m, minSize)
	sw.divide(m, minSize)
	se.divide(m, minSize)
}

func (n *QNode) newChild(m *cellstate.Matrix, pos Position, origin geometry.Vector2D, w, h int) *QNode {
	return &QNode{
		cell:     cellstate.NewCell(m, origin, w, h),
		parent:   n,
		position: pos,
		locator:  n.locator + strconv.Itoa(int(pos)),
	}
}

// Elements returns every leaf of the tree, in depth-first NW,NE,SW,SE order.
func (q *Quadtree) Elements() []Element {
	var out []Element
	var walk func(n *QNode)
	walk = func(n *QNode) {
		if n.IsLeaf() {
			out = append(out, n)
			return
		}
		walk(n.children[NW])
		walk(n.children[NE])
		walk(n.children[SW])
		walk(n.children[SE])
	}
	walk(q.root)
	return out
}

// Get descends from the root to the leaf containing point.
func (q *Quadtree) Get(point geometry.Vector2D) (Element, bool) {
	if !q.root.cell.Contains(point) {
		return nil, false
	}
	n := q.root
	for !n.IsLeaf() {
		found := false
		for _, c := range n.children {
			if c.cell.Contains(point) {
				n = c
				found = true
				break
			}
		}
		if !found {
			return nil, false
		}
	}
	return n, true
}

// Neighbours dispatches to the cardinal equal-or-greater/smaller-neighbor
// algorithm or the diagonal offset-point lookup.
func (q *Quadtree) Neighbours(element Element, direction geometry.Direction) []Element {
	n, ok := element.(*QNode)
	if !ok {
		return nil
	}
	if direction.IsDiagonal() {
		return q.diagonalNeighbour(n, direction)
	}
	return q.cardinalNeighbours(n, direction)
}

func (q *Quadtree) cardinalNeighbours(n *QNode, direction geometry.Direction) []Element {
	greater := equalOrGreaterNeighbour(n, direction)
	if greater == nil {
		return nil
	}
	leaves := smallerNeighbours(greater, direction)
	out := make([]Element, len(leaves))
	for i, l := range leaves {
		out[i] = l
	}
	return out
}

func (q *Quadtree) diagonalNeighbour(n *QNode, direction geometry.Direction) []Element {
	x, y := n.cell.Position.X, n.cell.Position.Y
	w, h := n.cell.Width, n.cell.Height

	var p geometry.Vector2D
	switch direction {
	case geometry.NW:
		p = geometry.Vector2D{X: x - 1, Y: y - 1}
	case geometry.NE:
		p = geometry.Vector2D{X: x + w, Y: y - 1}
	case geometry.SW:
		p = geometry.Vector2D{X: x - 1, Y: y + h}
	case geometry.SE:
		p = geometry.Vector2D{X: x + w, Y: y + h}
	default:
		return nil
	}

	el, ok := q.Get(p)
	if !ok {
		return nil
	}
	return []Element{el}
}

// siblingPosition returns the position of the same-parent sibling that
// sits on the dir side of pos, if one exists (e.g. N of SW is NW).
func siblingPosition(pos Position, direction geometry.Direction) (Position, bool) {
	switch pos {
	case NW:
		switch direction {
		case geometry.S:
			return SW, true
		case geometry.E:
			return NE, true
		}
	case NE:
		switch direction {
		case geometry.S:
			return SE, true
		case geometry.W:
			return NW, true
		}
	case SW:
		switch direction {
		case geometry.N:
			return NW, true
		case geometry.E:
			return SE, true
		}
	case SE:
		switch direction {
		case geometry.N:
			return NE, true
		case geometry.W:
			return SW, true
		}
	}
	return 0, false
}

// mirrorPosition returns the position mirrored across the axis
// perpendicular to direction — used to descend into the correct child
// after ascending to a common ancestor.
func mirrorPosition(pos Position, direction geometry.Direction) Position {
	if direction.IsVertical() {
		switch pos {
		case NW:
			return SW
		case SW:
			return NW
		case NE:
			return SE
		case SE:
			return NE
		}
	}
	switch pos {
	case NW:
		return NE
	case NE:
		return NW
	case SW:
		return SE
	case SE:
		return SW
	}
	return pos
}

// equalOrGreaterNeighbour finds the neighbor of n on the dir side whose
// size is >= n's, ascending toward the root and mirror-descending back
// down as needed.
func equalOrGreaterNeighbour(n *QNode, direction geometry.Direction) *QNode {
	if n.parent == nil {
		return nil
	}
	if sib, ok := siblingPosition(n.position, direction); ok {
		return n.parent.children[sib]
	}
	ascended := equalOrGreaterNeighbour(n.parent, direction)
	if ascended == nil || ascended.IsLeaf() {
		return ascended
	}
	return ascended.children[mirrorPosition(n.position, direction)]
}

// followPositions returns, for a cardinal direction, the two child slots
// a breadth-first descent must follow to reach the leaves bordering that
// side.
func followPositions(direction geometry.Direction) [2]Position {
	switch direction {
	case geometry.N:
		return [2]Position{SW, SE}
	case geometry.E:
		return [2]Position{NW, SW}
	case geometry.S:
		return [2]Position{NW, NE}
	default: // W
		return [2]Position{NE, SE}
	}
}

// smallerNeighbours breadth-first descends r, collecting every leaf that
// borders the query node on the dir side. If r is already a leaf it is
// the sole, possibly-larger, neighbor.
func smallerNeighbours(r *QNode, direction geometry.Direction) []*QNode {
	if r == nil {
		return nil
	}
	if r.IsLeaf() {
		return []*QNode{r}
	}
	var result []*QNode
	queue := []*QNode{r}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node.IsLeaf() {
			result = append(result, node)
			continue
		}
		for _, pos := range followPositions(direction) {
			queue = append(queue, node.children[pos])
		}
	}
	return result
}
