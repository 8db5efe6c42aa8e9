package pathfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/wayfarer/pkg/cellstate"
	"github.com/chazu/wayfarer/pkg/geometry"
	"github.com/chazu/wayfarer/pkg/graph"
	"github.com/chazu/wayfarer/pkg/world"
)

func vertexAt(t *testing.T, g *graph.Graph, w *world.Grid, x, y int) *graph.Vertex {
	t.Helper()
	el, ok := w.Get(geometry.Vector2D{X: x, Y: y})
	require.True(t, ok)
	v, ok := g.Vertex(el)
	require.True(t, ok)
	return v
}

func buildTestGraph(t *testing.T) (*graph.Graph, *world.Grid) {
	t.Helper()
	m := cellstate.NewMatrix(30, 30)
	for i := range m.Pixels {
		m.Pixels[i] = cellstate.SafeColor
	}
	g, err := world.NewGrid(m, 10)
	require.NoError(t, err)
	return graph.Build(g, true), g
}

func TestOpenSetPopsInKeyOrder(t *testing.T) {
	graphAll, w := buildTestGraph(t)
	a := vertexAt(t, graphAll, w, 0, 0)
	b := vertexAt(t, graphAll, w, 10, 0)
	c := vertexAt(t, graphAll, w, 20, 0)

	open := newOpenSet()
	open.push(a, 3)
	open.push(b, 1)
	open.push(c, 2)

	assert.Equal(t, b.ID(), open.pop().ID())
	assert.Equal(t, c.ID(), open.pop().ID())
	assert.Equal(t, a.ID(), open.pop().ID())
}

func TestOpenSetFIFOTieBreak(t *testing.T) {
	graphAll, w := buildTestGraph(t)
	a := vertexAt(t, graphAll, w, 0, 0)
	b := vertexAt(t, graphAll, w, 10, 0)
	c := vertexAt(t, graphAll, w, 20, 0)

	open := newOpenSet()
	open.push(a, 5)
	open.push(b, 5)
	open.push(c, 5)

	assert.Equal(t, a.ID(), open.pop().ID())
	assert.Equal(t, b.ID(), open.pop().ID())
	assert.Equal(t, c.ID(), open.pop().ID())
}

func TestOpenSetDecreaseKey(t *testing.T) {
	graphAll, w := buildTestGraph(t)
	a := vertexAt(t, graphAll, w, 0, 0)
	b := vertexAt(t, graphAll, w, 10, 0)

	open := newOpenSet()
	open.push(a, 10)
	open.push(b, 5)
	// a's key improves to below b's; true decrease-key must resurface it
	// first without creating a duplicate entry.
	open.push(a, 1)

	assert.Equal(t, 2, open.len())
	assert.Equal(t, a.ID(), open.pop().ID())
	assert.Equal(t, b.ID(), open.pop().ID())
}

func TestOpenSetIgnoresWorseKey(t *testing.T) {
	graphAll, w := buildTestGraph(t)
	a := vertexAt(t, graphAll, w, 0, 0)

	open := newOpenSet()
	open.push(a, 1)
	open.push(a, 5) // worse key, must not overwrite
	assert.Equal(t, 1, open.len())

	item := open.items[a.ID()]
	assert.Equal(t, 1.0, item.key)
}
