package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
)

func checkerboard(w, h int) *cellstate.Matrix {
	m := cellstate.NewMatrix(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				m.Set(x, y, cellstate.SafeColor)
			} else {
				m.Set(x, y, cellstate.UnsafeColor)
			}
		}
	}
	return m
}

func TestNewQuadtreeUniformRasterIsSingleLeaf(t *testing.T) {
	m := safeMatrix(16, 16)
	q, err := NewQuadtree(m, 2)
	require.NoError(t, err)

	elements := q.Elements()
	require.Len(t, elements, 1)
	assert.True(t, elements[0].Safe())
}

func TestNewQuadtreeMalformedRaster(t *testing.T) {
	m := safeMatrix(1, 1)
	_, err := NewQuadtree(m, 4)
	assert.ErrorIs(t, err, ErrMalformedRaster)
}

func TestQuadtreeDividesMixedRegionsToPureLeaves(t *testing.T) {
	m := checkerboard(8, 8)
	q, err := NewQuadtree(m, 1)
	require.NoError(t, err)

	elements := q.Elements()
	area := 0
	for _, e := range elements {
		c := e.Cell()
		area += c.Width * c.Height
		assert.False(t, c.Mixed(), "min size 1 must resolve every leaf to pure safe/unsafe")
	}
	assert.Equal(t, 8*8, area)
}

func TestQuadtreeRemainderAbsorption(t *testing.T) {
	// Odd dimensions force the remainder-pixel absorption path in divide.
	m := checkerboard(5, 5)
	q, err := NewQuadtree(m, 1)
	require.NoError(t, err)

	area := 0
	for _, e := range q.Elements() {
		c := e.Cell()
		area += c.Width * c.Height
	}
	assert.Equal(t, 5*5, area)
}

func TestQuadtreeGetRoundTrip(t *testing.T) {
	m := checkerboard(8, 8)
	q, err := NewQuadtree(m, 1)
	require.NoError(t, err)

	for _, e := range q.Elements() {
		found, ok := q.Get(e.Cell().Position)
		require.True(t, ok)
		assert.Equal(t, e.ID(), found.ID())
	}
}

func TestQuadtreeCardinalNeighboursAreSymmetric(t *testing.T) {
	m := checkerboard(8, 8)
	q, err := NewQuadtree(m, 1)
	require.NoError(t, err)

	// At minSize 1 over a checkerboard the tree fully resolves into a
	// uniform 1x1 grid, so cardinal neighbor lookups should round-trip.
	start, ok := q.Get(geometry.Vector2D{X: 4, Y: 4})
	require.True(t, ok)

	for _, d := range geometry.Cardinals {
		ns := q.Neighbours(start, d)
		if len(ns) == 0 {
			continue
		}
		back := q.Neighbours(ns[0], d.Opposite())
		require.NotEmpty(t, back, d.String())
		found := false
		for _, b := range back {
			if b.ID() == start.ID() {
				found = true
			}
		}
		assert.True(t, found, "expected %s neighbour-of-neighbour to include the origin node", d.String())
	}
}

func TestQuadtreeDiagonalNeighbourOffsets(t *testing.T) {
	m := safeMatrix(16, 16)
	q, err := NewQuadtree(m, 2)
	require.NoError(t, err)

	root, ok := q.Get(geometry.Vector2D{X: 0, Y: 0})
	require.True(t, ok)

	// A single uniform leaf covering the whole raster has no diagonal
	// neighbor off any of its edges.
	for _, d := range []geometry.Direction{geometry.NW, geometry.NE, geometry.SW, geometry.SE} {
		assert.Empty(t, q.Neighbours(root, d), d.String())
	}
}
